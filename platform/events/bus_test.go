package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"roadmap_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishDispatchesAsynchronously(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	received := make(chan Event, 2)
	handler := HandlerFunc(func(_ context.Context, e Event) error {
		received <- e
		return nil
	})
	bus.Subscribe("thing.happened", handler)
	bus.Subscribe("thing.happened", handler)

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	for i := 0; i < 2; i++ {
		select {
		case <-received:
		case <-time.After(time.Second):
			t.Fatalf("handler %d was never invoked", i)
		}
	}
}

func TestPublishIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	// No handlers registered; must be a no-op.
	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})
}

func TestPublishSyncReturnsFirstError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	first := errors.New("first")
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error { return first }))
	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error { return errors.New("second") }))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})
	if !errors.Is(err, first) {
		t.Fatalf("expected the first handler error, got %v", err)
	}
}

func TestPublishSyncRecoversHandlerPanic(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	bus.Subscribe("thing.happened", HandlerFunc(func(context.Context, Event) error { panic("boom") }))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})
	if err == nil {
		t.Fatal("expected a panic to surface as an error")
	}
}
