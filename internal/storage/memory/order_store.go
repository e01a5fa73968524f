package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// orderStoreInMemory — in-memory реализация OrderStore. Индекс по ID даёт
// O(1) поиск, отдельный срез сохраняет порядок вставки для List.
type orderStoreInMemory struct {
	mu    sync.RWMutex
	items map[int64]domain.Order
	seq   []int64
}

// NewOrderStore возвращает in-memory хранилище заказов.
func NewOrderStore() domain.OrderStore {
	return &orderStoreInMemory{
		items: make(map[int64]domain.Order),
	}
}

// Insert сохраняет новый заказ, если ID ещё не занят.
func (s *orderStoreInMemory) Insert(order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[order.ID]; exists {
		return domain.ErrOrderExists
	}
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	s.items[order.ID] = order
	s.seq = append(s.seq, order.ID)
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (s *orderStoreInMemory) Get(id int64) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// Update перезаписывает существующий заказ.
func (s *orderStoreInMemory) Update(order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	s.items[order.ID] = order
	return nil
}

// Remove удаляет заказ вместе с его позицией в порядке вставки.
func (s *orderStoreInMemory) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(s.items, id)
	for i, seqID := range s.seq {
		if seqID == id {
			s.seq = append(s.seq[:i], s.seq[i+1:]...)
			break
		}
	}
	return nil
}

// List возвращает копии живых заказов в порядке вставки.
func (s *orderStoreInMemory) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0, len(s.seq))
	for _, id := range s.seq {
		result = append(result, s.items[id])
	}
	return result
}

var _ domain.OrderStore = (*orderStoreInMemory)(nil)
