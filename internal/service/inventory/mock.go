package inventory

import "github.com/vladislavdragonenkov/orderdesk/internal/domain"

// Call — аргументы одного обращения к складу.
type Call struct {
	Product  string
	Quantity int32
}

// MockService — конфигурируемая заглушка StockChecker для тестов.
type MockService struct {
	Available bool

	CheckCalls    []Call
	ReduceCalls   []Call
	IncreaseCalls []Call
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{Available: true}
}

// CheckStock возвращает заранее настроенный результат и записывает вызов.
func (m *MockService) CheckStock(product string, quantity int32) bool {
	m.CheckCalls = append(m.CheckCalls, Call{product, quantity})
	return m.Available
}

// ReduceStock записывает вызов.
func (m *MockService) ReduceStock(product string, quantity int32) {
	m.ReduceCalls = append(m.ReduceCalls, Call{product, quantity})
}

// IncreaseStock записывает вызов.
func (m *MockService) IncreaseStock(product string, quantity int32) {
	m.IncreaseCalls = append(m.IncreaseCalls, Call{product, quantity})
}

var _ domain.StockChecker = (*MockService)(nil)
