package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderdesk/internal/service/inventory"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/notification"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/orders"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/payment"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
)

type apiFixture struct {
	server   http.Handler
	stock    *inventory.MockService
	payments *payment.MockService
	notifier *notification.MockNotifier
}

func newAPIFixture() *apiFixture {
	stock := inventory.NewMockService()
	payments := payment.NewMockService(nil)
	notifier := notification.NewMockNotifier()

	manager := orders.NewManagerWithoutMetrics(
		memory.NewOrderStore(),
		stock,
		payments,
		notifier,
		nil,
	)

	return &apiFixture{
		server:   NewRouter(NewHandler(manager, nil)),
		stock:    stock,
		payments: payments,
		notifier: notifier,
	}
}

func (fx *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateOrder(t *testing.T) {
	fx := newAPIFixture()

	rec := fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "Laptop", resp.Product)
	require.Equal(t, int32(1), resp.Quantity)
	require.True(t, resp.IsPaid)
	require.NotZero(t, resp.ID)

	require.Len(t, fx.notifier.Calls, 1)
}

func TestHandler_CreateOrder_InvalidRequest(t *testing.T) {
	fx := newAPIFixture()

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{"zero quantity", CreateOrderRequest{Product: "Laptop", Quantity: 0}},
		{"negative quantity", CreateOrderRequest{Product: "Laptop", Quantity: -1}},
		{"empty product", CreateOrderRequest{Product: "", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fx.do(t, http.MethodPost, "/orders", tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, "invalid_request", resp.Error)
		})
	}
}

func TestHandler_CreateOrder_MalformedJSON(t *testing.T) {
	fx := newAPIFixture()

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateOrder_OutOfStock(t *testing.T) {
	fx := newAPIFixture()
	fx.stock.Available = false

	rec := fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 1})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "out_of_stock", resp.Error)
}

func TestHandler_CreateOrder_PaymentFailed(t *testing.T) {
	fx := newAPIFixture()
	fx.payments.Result = false

	rec := fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Webcam", Quantity: 2})
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "payment_failed", resp.Error)

	// Резерв снят и возвращён.
	require.Len(t, fx.stock.ReduceCalls, 1)
	require.Len(t, fx.stock.IncreaseCalls, 1)
}

func TestHandler_ListOrders(t *testing.T) {
	fx := newAPIFixture()

	require.Equal(t, http.StatusCreated,
		fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 1}).Code)
	require.Equal(t, http.StatusCreated,
		fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Webcam", Quantity: 2}).Code)

	rec := fx.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	require.Equal(t, "Laptop", resp[0].Product)
	require.Equal(t, "Webcam", resp[1].Product)
}

func TestHandler_UpdateOrder(t *testing.T) {
	fx := newAPIFixture()

	rec := fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = fx.do(t, http.MethodPatch, "/orders/1", UpdateOrderRequest{Quantity: 5})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = fx.do(t, http.MethodGet, "/orders", nil)
	var listed []OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Equal(t, int32(5), listed[0].Quantity)
}

func TestHandler_UpdateOrder_Errors(t *testing.T) {
	fx := newAPIFixture()

	rec := fx.do(t, http.MethodPatch, "/orders/abc", UpdateOrderRequest{Quantity: 5})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(t, http.MethodPatch, "/orders/404", UpdateOrderRequest{Quantity: 5})
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusCreated,
		fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 1}).Code)

	rec = fx.do(t, http.MethodPatch, "/orders/1", UpdateOrderRequest{Quantity: 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RemoveOrder(t *testing.T) {
	fx := newAPIFixture()

	require.Equal(t, http.StatusCreated,
		fx.do(t, http.MethodPost, "/orders", CreateOrderRequest{Product: "Laptop", Quantity: 3}).Code)

	rec := fx.do(t, http.MethodDelete, "/orders/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Повторное удаление идемпотентно снаружи, но отвечает 404.
	rec = fx.do(t, http.MethodDelete, "/orders/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Len(t, fx.stock.IncreaseCalls, 1)
	require.Equal(t, int32(3), fx.stock.IncreaseCalls[0].Quantity)
}

func TestHandler_RemoveOrder_InvalidID(t *testing.T) {
	fx := newAPIFixture()

	rec := fx.do(t, http.MethodDelete, "/orders/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
