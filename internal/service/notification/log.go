package notification

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// LogNotifier пишет подтверждение заказа в журнал. Используется как
// notifier по умолчанию, когда Kafka не настроена.
type LogNotifier struct {
	logger *log.Entry
}

// NewLogNotifier создаёт notifier, пишущий в переданный журнал.
func NewLogNotifier(logger *log.Entry) *LogNotifier {
	if logger == nil {
		logger = log.New().WithField("component", "notification")
	}
	return &LogNotifier{logger: logger}
}

// SendConfirmation фиксирует подтверждение заказа в журнале.
func (n *LogNotifier) SendConfirmation(order domain.Order) {
	n.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"product":  order.Product,
		"qty":      order.Quantity,
	}).Info("order confirmation sent")
}

var _ domain.Notifier = (*LogNotifier)(nil)
