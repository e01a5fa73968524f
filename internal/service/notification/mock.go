package notification

import "github.com/vladislavdragonenkov/orderdesk/internal/domain"

// MockNotifier — заглушка Notifier, записывающая отправленные подтверждения.
type MockNotifier struct {
	Calls []domain.Order
}

// NewMockNotifier возвращает пустой mock.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SendConfirmation записывает вызов.
func (m *MockNotifier) SendConfirmation(order domain.Order) {
	m.Calls = append(m.Calls, order)
}

var _ domain.Notifier = (*MockNotifier)(nil)
