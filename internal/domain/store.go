package domain

// OrderStore описывает требования к хранилищу заказов.
type OrderStore interface {
	// Insert сохраняет новый заказ. Возвращает ErrOrderExists, если ID уже занят.
	Insert(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id int64) (Order, error)
	// Update перезаписывает существующий заказ или возвращает ErrOrderNotFound.
	Update(order Order) error
	// Remove удаляет заказ или возвращает ErrOrderNotFound.
	Remove(id int64) error
	// List возвращает копии всех живых заказов в порядке вставки.
	List() []Order
}
