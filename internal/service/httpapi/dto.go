package httpapi

import "time"

type CreateOrderRequest struct {
	Product  string `json:"product"`
	Quantity int32  `json:"quantity"`
}

type UpdateOrderRequest struct {
	Quantity int32 `json:"quantity"`
}

type OrderResponse struct {
	ID        int64     `json:"id"`
	Product   string    `json:"product"`
	Quantity  int32     `json:"quantity"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
