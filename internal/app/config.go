package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес API заказов.
	HTTPAddr string
	// MetricsAddr — адрес метрик и health-проверок.
	MetricsAddr string
	// KafkaBrokers — брокеры для публикации подтверждений; пустой список
	// переключает подтверждения на журнал.
	KafkaBrokers []string
	// PostgresDSN — подключение к базе остатков; пустая строка переключает
	// склад на in-memory реализацию.
	PostgresDSN string
	// SeedStock — начальные остатки по товарам.
	SeedStock map[string]int32
}

// DefaultConfig возвращает базовые адреса API и метрик.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
	}
}

// FromEnv читает конфигурацию из переменных окружения поверх значений
// по умолчанию.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if addr := os.Getenv("ORDERDESK_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if addr := os.Getenv("ORDERDESK_METRICS_ADDR"); addr != "" {
		cfg.MetricsAddr = addr
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.PostgresDSN = os.Getenv("ORDERDESK_PG_DSN")

	if seed := os.Getenv("ORDERDESK_SEED_STOCK"); seed != "" {
		parsed, err := parseSeedStock(seed)
		if err != nil {
			return Config{}, fmt.Errorf("parse ORDERDESK_SEED_STOCK: %w", err)
		}
		cfg.SeedStock = parsed
	}

	return cfg, nil
}

// parseSeedStock разбирает строку вида "Laptop:10,Webcam:5".
func parseSeedStock(raw string) (map[string]int32, error) {
	seed := make(map[string]int32)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		product, qty, ok := strings.Cut(pair, ":")
		if !ok || product == "" {
			return nil, fmt.Errorf("invalid entry %q, expected product:quantity", pair)
		}
		n, err := strconv.ParseInt(qty, 10, 32)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid quantity in entry %q", pair)
		}
		seed[product] = int32(n)
	}
	return seed, nil
}
