package payment

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// MockService — конфигурируемая заглушка PaymentProcessor. Используется
// и в тестах, и как провайдер по умолчанию в development-окружении.
type MockService struct {
	Result bool

	Calls  []domain.Order
	logger *log.Entry
}

// NewMockService возвращает mock, одобряющий все платежи.
func NewMockService(logger *log.Entry) *MockService {
	if logger == nil {
		logger = log.New().WithField("component", "payment")
	}
	return &MockService{
		Result: true,
		logger: logger,
	}
}

// ProcessPayment возвращает заранее настроенный результат и записывает вызов.
func (m *MockService) ProcessPayment(order domain.Order) bool {
	m.Calls = append(m.Calls, order)
	m.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"product":  order.Product,
		"qty":      order.Quantity,
		"approved": m.Result,
	}).Debug("payment processed")
	return m.Result
}

var _ domain.PaymentProcessor = (*MockService)(nil)
