package inventory

import "testing"

func TestMockService_Defaults(t *testing.T) {
	mock := NewMockService()

	if !mock.CheckStock("Laptop", 1) {
		t.Error("default mock should report stock as available")
	}
	if len(mock.CheckCalls) != 1 {
		t.Errorf("expected 1 recorded check, got %d", len(mock.CheckCalls))
	}
	if call := mock.CheckCalls[0]; call.Product != "Laptop" || call.Quantity != 1 {
		t.Errorf("unexpected recorded args: %+v", call)
	}
}

func TestMockService_Configured(t *testing.T) {
	mock := NewMockService()
	mock.Available = false

	if mock.CheckStock("Laptop", 1) {
		t.Error("expected configured unavailability")
	}

	mock.ReduceStock("Laptop", 2)
	mock.IncreaseStock("Laptop", 2)

	if len(mock.ReduceCalls) != 1 || len(mock.IncreaseCalls) != 1 {
		t.Errorf("expected one reduce and one increase, got %d/%d",
			len(mock.ReduceCalls), len(mock.IncreaseCalls))
	}
}
