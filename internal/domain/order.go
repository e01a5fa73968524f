package domain

import "time"

// Order представляет оплаченный заказ, живущий в коллекции OrderDesk.
type Order struct {
	// ID — уникальный монотонный идентификатор, выдаётся менеджером при создании
	// и не переиспользуется после удаления заказа.
	ID int64
	// Product — внешний идентификатор товара.
	Product string
	// Quantity — количество единиц товара, всегда > 0 пока заказ существует.
	Quantity int32
	// IsPaid выставляется в true только после успешного списания средств
	// и никогда не сбрасывается для живого заказа.
	IsPaid    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Product == "" {
		errs = append(errs, ErrProductRequired)
	}
	if o.Quantity <= 0 {
		errs = append(errs, ErrQuantityInvalid)
	}

	return errs
}
