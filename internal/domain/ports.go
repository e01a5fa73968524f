package domain

// StockChecker описывает взаимодействие со складом. Все методы синхронные;
// политика повторов и таймаутов — ответственность реализации.
type StockChecker interface {
	// CheckStock сообщает, доступно ли quantity единиц товара.
	CheckStock(product string, quantity int32) bool
	// ReduceStock уменьшает доступный остаток (резерв под заказ).
	ReduceStock(product string, quantity int32)
	// IncreaseStock возвращает остаток на склад (компенсация или удаление заказа).
	IncreaseStock(product string, quantity int32)
}

// PaymentProcessor описывает взаимодействие с платёжным провайдером.
type PaymentProcessor interface {
	// ProcessPayment инициирует списание средств по заказу и сообщает результат.
	ProcessPayment(order Order) bool
}

// Notifier отправляет клиенту подтверждение заказа. Вызов fire-and-forget:
// ошибки доставки ядро не наблюдает и не обрабатывает.
type Notifier interface {
	SendConfirmation(order Order)
}
