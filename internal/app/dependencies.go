package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/inventory"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/notification"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/payment"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

// Dependencies содержит коллабораторов менеджера заказов.
type Dependencies struct {
	Store    domain.OrderStore
	Stock    domain.StockChecker
	Payments domain.PaymentProcessor
	Notifier domain.Notifier
	Logger   *log.Entry
}

// NewDependencies создаёт зависимости по умолчанию: память и журнал,
// без внешних систем.
// NOTE: В production окружении payment сервис должен быть заменён
// на реального клиента платёжного провайдера.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	return &Dependencies{
		Store:    memory.NewOrderStore(),
		Stock:    inventory.NewInMemoryService(logger.WithField("component", "inventory")),
		Payments: payment.NewMockService(logger.WithField("component", "payment")),
		Notifier: notification.NewLogNotifier(logger.WithField("component", "notification")),
		Logger:   logger,
	}
}
