package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора товара.
	ErrProductRequired = errors.New("product is required")
	// Ошибка некорректного количества товара (<= 0).
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	// ErrOutOfStock — склад сообщил о нехватке товара; резерв не создавался.
	ErrOutOfStock = errors.New("insufficient stock")
	// ErrPaymentFailed — платёж отклонён провайдером; резерв уже возвращён на склад.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists сигнализирует о попытке вставить заказ с занятым ID.
	ErrOrderExists = errors.New("order already exists")
)

// IsInvalidArgument проверяет, относится ли ошибка к классу ошибок валидации аргументов.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrQuantityInvalid) || errors.Is(err, ErrProductRequired)
}

// IsOutOfStock проверяет, является ли ошибка нехваткой товара на складе.
func IsOutOfStock(err error) bool {
	return errors.Is(err, ErrOutOfStock)
}

// IsPaymentFailed проверяет, является ли ошибка отказом платёжного провайдера.
func IsPaymentFailed(err error) bool {
	return errors.Is(err, ErrPaymentFailed)
}
