package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPublishDeliversToAllHandlers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var mu sync.Mutex
	got := 0
	var wg sync.WaitGroup
	wg.Add(2)

	handler := func(ctx context.Context, event Event) error {
		defer wg.Done()
		mu.Lock()
		got++
		mu.Unlock()
		return nil
	}
	bus.Subscribe(EventBillGenerated, handler)
	bus.Subscribe(EventBillGenerated, handler)

	bus.Publish(context.Background(), NewEvent(EventBillGenerated, "BILL-1", nil))

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if got != 2 {
		t.Fatalf("expected 2 handler invocations, got %d", got)
	}
}

func TestPublishSurvivesFailingAndPanickingHandlers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	bus.Subscribe(EventExportFailed, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(EventExportFailed, func(ctx context.Context, event Event) error {
		panic("boom")
	})

	// Must not panic the publisher.
	bus.Publish(context.Background(), NewEvent(EventExportFailed, "BILL-1", nil))
	time.Sleep(50 * time.Millisecond)
}

func TestNewEventIdentity(t *testing.T) {
	a := NewEvent(EventBillGenerated, "BILL-1", nil)
	b := NewEvent(EventBillGenerated, "BILL-1", nil)
	if a.ID == b.ID {
		t.Fatal("event IDs must be unique")
	}
	if a.Type != EventBillGenerated || a.BillID != "BILL-1" {
		t.Fatal("event fields not set")
	}
}
