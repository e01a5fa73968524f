package kafka

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func newTestProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()

	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}
	return producer, mockProducer
}

func TestProducer_PublishOrderEvent(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	// Топик, ключ и payload выводятся из самого события.
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicOrderEvents {
			return fmt.Errorf("unexpected topic %s", msg.Topic)
		}

		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "42" {
			return fmt.Errorf("unexpected key %s", key)
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var decoded OrderEvent
		if err := json.Unmarshal(value, &decoded); err != nil {
			return fmt.Errorf("payload should be valid json: %w", err)
		}
		if decoded.EventType != EventTypeOrderConfirmed || decoded.OrderID != 42 {
			return fmt.Errorf("unexpected payload: %+v", decoded)
		}
		if decoded.Product != "Laptop" || decoded.Quantity != 1 || !decoded.IsPaid {
			return fmt.Errorf("unexpected order fields: %+v", decoded)
		}
		return nil
	})

	event := NewOrderEvent(EventTypeOrderConfirmed, 42, "Laptop", 1, true)
	if err := producer.PublishOrderEvent(event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Проверяем, что все ожидания выполнены
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishOrderEvent_Error(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewOrderEvent(EventTypeOrderConfirmed, 1, "Laptop", 1, true)
	if err := producer.PublishOrderEvent(event); err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderEvent(t *testing.T) {
	event := NewOrderEvent(EventTypeOrderConfirmed, 42, "Webcam", 2, true)

	if event.EventType != EventTypeOrderConfirmed {
		t.Errorf("expected event type %s, got %s", EventTypeOrderConfirmed, event.EventType)
	}

	if event.OrderID != 42 {
		t.Errorf("expected order id 42, got %d", event.OrderID)
	}

	if event.Product != "Webcam" || event.Quantity != 2 {
		t.Errorf("unexpected payload: %+v", event)
	}

	if !event.IsPaid {
		t.Error("expected is_paid to be true")
	}

	if event.EventID == "" {
		t.Error("event id should not be empty")
	}

	// Проверяем, что timestamp близок к текущему времени
	if event.Timestamp.IsZero() || time.Since(event.Timestamp) > time.Second {
		t.Error("timestamp should be close to current time")
	}
}
