package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// Producer публикует события заказов в топик TopicOrderEvents.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// newSaramaConfig возвращает конфигурацию идемпотентного sync-producer-а:
// подтверждение от всех ISR, snappy-сжатие, ограниченные повторы.
func newSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1 // требование идемпотентного режима
	return cfg
}

// NewProducer подключается к брокерам и создаёт producer событий заказов.
func NewProducer(brokers []string) (*Producer, error) {
	sp, err := sarama.NewSyncProducer(brokers, newSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("create order events producer: %w", err)
	}

	return &Producer{
		producer: sp,
		logger:   log.WithField("component", "kafka-producer"),
	}, nil
}

// PublishOrderEvent публикует событие заказа. Ключом сообщения служит ID
// заказа: события одного заказа попадают в одну партицию и сохраняют
// взаимный порядок.
func (p *Producer) PublishOrderEvent(event *OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:     TopicOrderEvents,
		Key:       sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.Timestamp,
	})
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.EventType,
			"order_id":   event.OrderID,
		}).Error("failed to publish order event")
		return fmt.Errorf("publish order event: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"event_type": event.EventType,
		"order_id":   event.OrderID,
		"partition":  partition,
		"offset":     offset,
	}).Debug("order event published")

	return nil
}

// Close закрывает соединение с брокерами.
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close order events producer: %w", err)
	}
	return nil
}
