package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan ViewChangedEvent, 1)
	b.Subscribe(EventViewChanged, func(e DomainEvent) {
		if ev, ok := e.(ViewChangedEvent); ok {
			got <- ev
		}
	})

	b.Publish(ViewChangedEvent{Trigger: "query", Query: "zelda", Page: 1})

	select {
	case ev := <-got:
		require.Equal(t, "zelda", ev.Query)
		require.Equal(t, 1, ev.Page)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber was not called")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { close(done) })
	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	require.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventAppReady, func(DomainEvent) { panic("handler failure") })
	b.Subscribe(EventAppReady, func(DomainEvent) { close(done) })

	b.Publish(AppReadyEvent{Mode: "tui"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("panicking handler blocked other subscribers")
	}
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New()
	b.Close()

	require.NotPanics(t, func() {
		b.Publish(ConfigSavedEvent{Path: "x"})
		b.Close()
	})
}

func TestNullBus(t *testing.T) {
	var b EventBus = NullBus{}
	b.Publish(AppReadyEvent{})
	b.Subscribe(EventAppReady, func(DomainEvent) {})()
	b.Close()
}
