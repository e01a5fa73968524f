package inventory

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// InMemoryService хранит остатки по товарам в памяти процесса.
// Подходит для разработки и демо; в production роль склада берёт
// на себя postgres-адаптер.
type InMemoryService struct {
	mu     sync.Mutex
	levels map[string]int32
	logger *log.Entry
}

// NewInMemoryService создаёт склад с пустыми остатками.
func NewInMemoryService(logger *log.Entry) *InMemoryService {
	if logger == nil {
		logger = log.New().WithField("component", "inventory")
	}
	return &InMemoryService{
		levels: make(map[string]int32),
		logger: logger,
	}
}

// SetStock выставляет абсолютный остаток товара (начальное заполнение).
func (s *InMemoryService) SetStock(product string, quantity int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels[product] = quantity
}

// CheckStock сообщает, достаточно ли остатка для запрошенного количества.
func (s *InMemoryService) CheckStock(product string, quantity int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.levels[product] >= quantity
}

// ReduceStock списывает количество с остатка товара.
func (s *InMemoryService) ReduceStock(product string, quantity int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels[product] -= quantity
	if s.levels[product] < 0 {
		// Списание без предварительной проверки — ошибка вызывающего.
		s.logger.WithFields(log.Fields{
			"product": product,
			"level":   s.levels[product],
		}).Warn("stock level went negative")
	}
}

// IncreaseStock возвращает количество на остаток товара.
func (s *InMemoryService) IncreaseStock(product string, quantity int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels[product] += quantity
}

var _ domain.StockChecker = (*InMemoryService)(nil)
