package notification

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/messaging/kafka"
)

// OrderEventPublisher публикует события заказов. Реализуется kafka.Producer;
// топик и ключ сообщения producer выводит из самого события.
type OrderEventPublisher interface {
	PublishOrderEvent(event *kafka.OrderEvent) error
}

// KafkaNotifier публикует подтверждение заказа как событие order.confirmed.
// Ошибка публикации логируется и не распространяется: подтверждение не
// участвует в жизненном цикле заказа и не должно его откатывать.
type KafkaNotifier struct {
	publisher OrderEventPublisher
	logger    *log.Entry
}

// NewKafkaNotifier создаёт notifier поверх publisher-а.
func NewKafkaNotifier(publisher OrderEventPublisher, logger *log.Entry) *KafkaNotifier {
	if logger == nil {
		logger = log.New().WithField("component", "notification")
	}
	return &KafkaNotifier{
		publisher: publisher,
		logger:    logger,
	}
}

// SendConfirmation публикует событие подтверждения заказа.
func (n *KafkaNotifier) SendConfirmation(order domain.Order) {
	event := kafka.NewOrderEvent(
		kafka.EventTypeOrderConfirmed,
		order.ID,
		order.Product,
		order.Quantity,
		order.IsPaid,
	)

	if err := n.publisher.PublishOrderEvent(event); err != nil {
		n.logger.WithError(err).WithField("order_id", order.ID).
			Error("failed to publish order confirmation")
		return
	}

	n.logger.WithField("order_id", order.ID).Debug("order confirmation published")
}

var _ domain.Notifier = (*KafkaNotifier)(nil)
