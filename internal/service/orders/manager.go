package orders

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/metrics"
)

// Manager владеет коллекцией заказов и координирует склад, платёжный
// провайдер и отправку подтверждений. Последовательность побочных эффектов
// при создании строгая: резерв на складе → оплата → (вставка → подтверждение
// | возврат резерва → ошибка).
type Manager struct {
	mu       sync.Mutex
	store    domain.OrderStore
	stock    domain.StockChecker
	payments domain.PaymentProcessor
	notifier domain.Notifier
	logger   *log.Entry
	metrics  *metrics.OrderMetrics

	// nextID — монотонный счётчик идентификаторов; выданные ID не
	// переиспользуются, даже если оплата заказа не прошла.
	nextID int64
}

// NewManager создаёт рабочий экземпляр менеджера заказов.
func NewManager(
	store domain.OrderStore,
	stock domain.StockChecker,
	payments domain.PaymentProcessor,
	notifier domain.Notifier,
	logger *log.Entry,
) *Manager {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Manager{
		store:    store,
		stock:    stock,
		payments: payments,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics.NewOrderMetrics(),
		nextID:   1,
	}
}

// NewManagerWithoutMetrics создаёт менеджер без метрик (для тестов).
func NewManagerWithoutMetrics(
	store domain.OrderStore,
	stock domain.StockChecker,
	payments domain.PaymentProcessor,
	notifier domain.Notifier,
	logger *log.Entry,
) *Manager {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Manager{
		store:    store,
		stock:    stock,
		payments: payments,
		notifier: notifier,
		logger:   logger,
		metrics:  nil,
		nextID:   1,
	}
}

// CreateOrder проводит заказ через весь жизненный цикл: проверку аргументов,
// резерв на складе, оплату и вставку в коллекцию. Любая ошибка оставляет
// состояние склада таким же, каким оно было до вызова.
func (m *Manager) CreateOrder(product string, quantity int32) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if m.metrics != nil {
			m.metrics.RecordCreateDuration(time.Since(start))
		}
	}()

	// Валидация аргументов выполняется до обращения к коллабораторам.
	if quantity <= 0 {
		m.recordRejected(metrics.RejectReasonInvalidArgument)
		return domain.Order{}, domain.ErrQuantityInvalid
	}
	if product == "" {
		m.recordRejected(metrics.RejectReasonInvalidArgument)
		return domain.Order{}, domain.ErrProductRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.stock.CheckStock(product, quantity) {
		m.logger.WithFields(log.Fields{
			"product": product,
			"qty":     quantity,
		}).Warn("stock check failed")
		m.recordRejected(metrics.RejectReasonOutOfStock)
		return domain.Order{}, fmt.Errorf("product %q: %w", product, domain.ErrOutOfStock)
	}

	// Провизорный резерв: остаток уменьшается до попытки оплаты.
	m.stock.ReduceStock(product, quantity)

	now := time.Now().UTC()
	order := domain.Order{
		ID:        m.allocateID(),
		Product:   product,
		Quantity:  quantity,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if !m.payments.ProcessPayment(order) {
		// Компенсация: резерв возвращается на склад до того, как ошибка
		// уйдёт вызывающему.
		m.stock.IncreaseStock(product, quantity)
		m.logger.WithFields(log.Fields{
			"order_id": order.ID,
			"product":  product,
			"qty":      quantity,
		}).Warn("payment declined, reservation released")
		m.recordRejected(metrics.RejectReasonPaymentFailed)
		return domain.Order{}, fmt.Errorf("order %d: %w", order.ID, domain.ErrPaymentFailed)
	}
	order.IsPaid = true

	if err := m.store.Insert(order); err != nil {
		// При монотонных ID конфликт вставки невозможен; если хранилище всё же
		// отказало, резерв снимается, чтобы склад не разошёлся с коллекцией.
		m.stock.IncreaseStock(product, quantity)
		m.logger.WithError(err).WithField("order_id", order.ID).Error("failed to store order")
		return domain.Order{}, fmt.Errorf("store order: %w", err)
	}

	// Подтверждение отправляется ровно один раз и только после вставки.
	m.notifier.SendConfirmation(order)

	if m.metrics != nil {
		m.metrics.RecordOrderCreated()
	}
	m.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"product":  product,
		"qty":      quantity,
	}).Info("order created")

	return order, nil
}

// UpdateOrder меняет количество в существующем заказе. Отсутствующий ID и
// некорректное количество — ожидаемые исходы, они возвращают false без ошибки.
// Резерв на складе и оплата при этом не пересчитываются: изменение затрагивает
// только запись заказа.
func (m *Manager) UpdateOrder(id int64, newQuantity int32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.store.Get(id)
	if err != nil {
		return false
	}
	if newQuantity <= 0 {
		return false
	}

	order.Quantity = newQuantity
	order.UpdatedAt = time.Now().UTC()
	if err := m.store.Update(order); err != nil {
		m.logger.WithError(err).WithField("order_id", id).Error("failed to persist quantity update")
		return false
	}

	if m.metrics != nil {
		m.metrics.RecordOrderUpdated()
	}
	m.logger.WithFields(log.Fields{
		"order_id": id,
		"qty":      newQuantity,
	}).Info("order quantity updated")

	return true
}

// RemoveOrder удаляет заказ и ровно один раз возвращает его резерв на склад.
// Отсутствующий ID — ожидаемый исход, возвращается false.
func (m *Manager) RemoveOrder(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.store.Get(id)
	if err != nil {
		return false
	}
	if err := m.store.Remove(id); err != nil {
		m.logger.WithError(err).WithField("order_id", id).Error("failed to remove order")
		return false
	}

	// Возврат по текущему количеству заказа на момент удаления.
	m.stock.IncreaseStock(order.Product, order.Quantity)

	if m.metrics != nil {
		m.metrics.RecordOrderRemoved()
	}
	m.logger.WithFields(log.Fields{
		"order_id": id,
		"product":  order.Product,
		"qty":      order.Quantity,
	}).Info("order removed, stock released")

	return true
}

// GetOrders возвращает снимок живых заказов в порядке создания. Мутации
// результата не затрагивают внутреннее состояние менеджера.
func (m *Manager) GetOrders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.List()
}

func (m *Manager) allocateID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Manager) recordRejected(reason string) {
	if m.metrics != nil {
		m.metrics.RecordOrderRejected(reason)
	}
}
