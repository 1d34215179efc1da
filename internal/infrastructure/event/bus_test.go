package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEvent implements DomainEvent for testing
type testEvent struct {
	shared.BaseDomainEvent
	Seq int `json:"seq"`
}

func newTestEvent(eventType string, seq int) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", "agg-1"),
		Seq:             seq,
	}
}

// testHandler implements EventHandler for testing
type testHandler struct {
	eventTypes []string
	mu         sync.Mutex
	handled    []shared.DomainEvent
	block      chan struct{}
}

func newTestHandler(eventTypes ...string) *testHandler {
	return &testHandler{
		eventTypes: eventTypes,
		handled:    make([]shared.DomainEvent, 0),
	}
}

func (h *testHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.block != nil {
		<-h.block
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	return nil
}

func (h *testHandler) EventTypes() []string {
	return h.eventTypes
}

func (h *testHandler) handledCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func (h *testHandler) handledEvents() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]shared.DomainEvent(nil), h.handled...)
}

func TestChannelEventBus_DeliversInFIFOOrder(t *testing.T) {
	bus := NewChannelEventBus("test", 10, zap.NewNop())
	handler := newTestHandler("TestEvent")
	bus.Subscribe(handler)

	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))
	defer func() { _ = bus.Stop(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(ctx, newTestEvent("TestEvent", i)))
	}

	require.Eventually(t, func() bool {
		return handler.handledCount() == 5
	}, time.Second, 5*time.Millisecond)

	for i, e := range handler.handledEvents() {
		assert.Equal(t, i, e.(*testEvent).Seq)
	}
}

func TestChannelEventBus_PublishBlocksWhenFull(t *testing.T) {
	bus := NewChannelEventBus("test", 1, zap.NewNop())
	// No consumer: Start is never called, so the channel fills up

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, newTestEvent("TestEvent", 0)))

	blockedCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := bus.Publish(blockedCtx, newTestEvent("TestEvent", 1))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChannelEventBus_BackpressureReleasesWhenConsumed(t *testing.T) {
	bus := NewChannelEventBus("test", 1, zap.NewNop())
	handler := newTestHandler("TestEvent")
	bus.Subscribe(handler)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, newTestEvent("TestEvent", 0)))

	// The channel is full; a consumer must drain it before the next
	// publish can proceed
	require.NoError(t, bus.Start(ctx))
	defer func() { _ = bus.Stop(ctx) }()

	publishCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, bus.Publish(publishCtx, newTestEvent("TestEvent", 1)))

	require.Eventually(t, func() bool {
		return handler.handledCount() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestChannelEventBus_IgnoresUnhandledEventTypes(t *testing.T) {
	bus := NewChannelEventBus("test", 10, zap.NewNop())
	handler := newTestHandler("Interesting")
	bus.Subscribe(handler)

	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))
	defer func() { _ = bus.Stop(ctx) }()

	require.NoError(t, bus.Publish(ctx, newTestEvent("Unrelated", 0)))
	require.NoError(t, bus.Publish(ctx, newTestEvent("Interesting", 1)))

	require.Eventually(t, func() bool {
		return handler.handledCount() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "Interesting", handler.handledEvents()[0].EventType())
}

func TestChannelEventBus_StopWaitsForInFlightDispatch(t *testing.T) {
	bus := NewChannelEventBus("test", 10, zap.NewNop())
	handler := newTestHandler("TestEvent")
	handler.block = make(chan struct{})
	bus.Subscribe(handler)

	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))
	require.NoError(t, bus.Publish(ctx, newTestEvent("TestEvent", 0)))

	// Give the consumer time to pick the event up and block inside the
	// handler, then stop the bus while it is in flight
	time.Sleep(20 * time.Millisecond)

	stopDone := make(chan error, 1)
	go func() {
		stopCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		stopDone <- bus.Stop(stopCtx)
	}()

	select {
	case <-stopDone:
		t.Fatal("Stop returned before the in-flight handler finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(handler.block)
	require.NoError(t, <-stopDone)
	assert.Equal(t, 1, handler.handledCount())
}

func TestChannelEventBus_StartTwiceFails(t *testing.T) {
	bus := NewChannelEventBus("test", 10, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, bus.Start(ctx))
	defer func() { _ = bus.Stop(ctx) }()

	require.Error(t, bus.Start(ctx))
}

func TestChannelEventBus_StopWithoutStart(t *testing.T) {
	bus := NewChannelEventBus("test", 10, zap.NewNop())
	require.NoError(t, bus.Stop(context.Background()))
}
