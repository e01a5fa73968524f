package payment

import (
	"testing"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

func TestMockService_Defaults(t *testing.T) {
	mock := NewMockService(nil)

	order := domain.Order{ID: 1, Product: "Laptop", Quantity: 1}
	if !mock.ProcessPayment(order) {
		t.Error("default mock should approve payments")
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].ID != 1 {
		t.Errorf("unexpected recorded order: %+v", mock.Calls[0])
	}
}

func TestMockService_Declined(t *testing.T) {
	mock := NewMockService(nil)
	mock.Result = false

	if mock.ProcessPayment(domain.Order{ID: 2, Product: "Webcam", Quantity: 2}) {
		t.Error("expected configured decline")
	}
	if len(mock.Calls) != 1 {
		t.Errorf("declined payment must still be recorded, got %d calls", len(mock.Calls))
	}
}
