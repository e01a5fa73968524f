package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// OrderService — операции менеджера заказов, которые выставляет HTTP-слой.
// Реализуется orders.Manager.
type OrderService interface {
	CreateOrder(product string, quantity int32) (domain.Order, error)
	UpdateOrder(id int64, newQuantity int32) bool
	RemoveOrder(id int64) bool
	GetOrders() []domain.Order
}

// Handler обрабатывает HTTP-запросы к коллекции заказов.
type Handler struct {
	orders OrderService
	logger *log.Entry
}

// NewHandler создаёт обработчик поверх менеджера заказов.
func NewHandler(orders OrderService, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Handler{
		orders: orders,
		logger: logger,
	}
}

// CreateOrder принимает запрос и проводит заказ через жизненный цикл.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.orders.CreateOrder(req.Product, req.Quantity)
	if err != nil {
		// Классы ошибок жизненного цикла транслируются в статусы HTTP.
		switch {
		case domain.IsInvalidArgument(err):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case domain.IsOutOfStock(err):
			writeError(w, http.StatusConflict, "out_of_stock", err.Error())
		case domain.IsPaymentFailed(err):
			writeError(w, http.StatusPaymentRequired, "payment_failed", err.Error())
		default:
			h.logger.WithError(err).Error("create order failed")
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

// ListOrders возвращает живые заказы в порядке создания.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.GetOrders()

	out := make([]OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = mapOrderToResponse(order)
	}

	writeJSON(w, http.StatusOK, out)
}

// UpdateOrder меняет количество в существующем заказе.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "")
		return
	}

	var req UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	// Количество валидируется здесь, чтобы отличать 400 от 404: менеджер
	// возвращает false в обоих случаях.
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}

	if !h.orders.UpdateOrder(id, req.Quantity) {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveOrder удаляет заказ и возвращает его резерв на склад.
func (h *Handler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "")
		return
	}

	if !h.orders.RemoveOrder(id) {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func mapOrderToResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		Product:   order.Product,
		Quantity:  order.Quantity,
		IsPaid:    order.IsPaid,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
