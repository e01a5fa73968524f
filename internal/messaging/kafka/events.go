package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderConfirmed EventType = "order.confirmed"
)

// Topics для Kafka
const (
	TopicOrderEvents = "orderdesk.order.events"
)

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	OrderID   int64     `json:"order_id"`
	Product   string    `json:"product"`
	Quantity  int32     `json:"quantity"`
	IsPaid    bool      `json:"is_paid"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID int64, product string, quantity int32, isPaid bool) *OrderEvent {
	return &OrderEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		OrderID:   orderID,
		Product:   product,
		Quantity:  quantity,
		IsPaid:    isPaid,
		Timestamp: time.Now(),
	}
}
