package event

import (
	"context"
	"sync/atomic"

	"github.com/orderflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultCapacity is the bounded channel capacity used when a bus is
// created with a non-positive capacity.
const DefaultCapacity = 100

// ChannelEventBus implements EventBus on top of a single bounded FIFO
// channel. Publish blocks once the channel is full (backpressure
// instead of dropping events). A single consumer goroutine takes events
// in publish order and dispatches them to registered handlers, so two
// events published in sequence are always handled in that sequence.
//
// One bus instance carries one event category; the process wires up one
// bus for order events and one for shipping events at startup.
type ChannelEventBus struct {
	name     string
	ch       chan shared.DomainEvent
	registry *HandlerRegistry
	logger   *zap.Logger
	running  atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewChannelEventBus creates a new bounded channel event bus
func NewChannelEventBus(name string, capacity int, logger *zap.Logger) *ChannelEventBus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ChannelEventBus{
		name:     name,
		ch:       make(chan shared.DomainEvent, capacity),
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Publish enqueues events in order. It blocks while the channel is full
// and returns the context error if the caller gives up while waiting.
func (b *ChannelEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, event := range events {
		select {
		case b.ch <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types
func (b *ChannelEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed",
		zap.String("bus", b.name),
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (b *ChannelEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed", zap.String("bus", b.name))
}

// Start launches the consumer goroutine
func (b *ChannelEventBus) Start(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return shared.NewDomainError("BUS_ALREADY_STARTED", "Event bus is already running")
	}

	loopCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})

	go b.consumeLoop(loopCtx)

	b.logger.Info("event bus started",
		zap.String("bus", b.name),
		zap.Int("capacity", cap(b.ch)),
	)
	return nil
}

// Stop cancels the consumer loop and waits for the in-flight event to
// finish. Events still queued in the channel at that point are
// abandoned; the bus has process lifetime and nothing is persisted.
func (b *ChannelEventBus) Stop(ctx context.Context) error {
	if !b.running.CompareAndSwap(true, false) {
		return nil
	}

	b.cancel()
	select {
	case <-b.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if pending := len(b.ch); pending > 0 {
		b.logger.Warn("event bus stopped with undelivered events",
			zap.String("bus", b.name),
			zap.Int("pending", pending),
		)
	} else {
		b.logger.Info("event bus stopped", zap.String("bus", b.name))
	}
	return nil
}

// consumeLoop takes events one at a time, preserving FIFO order
func (b *ChannelEventBus) consumeLoop(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-b.ch:
			// Once an event is taken it is handled to completion,
			// even when shutdown begins mid-dispatch.
			b.dispatch(context.WithoutCancel(ctx), event)
		}
	}
}

// dispatch routes one event to every handler registered for its type.
// Event types nobody subscribed to are skipped.
func (b *ChannelEventBus) dispatch(ctx context.Context, event shared.DomainEvent) {
	handlers := b.registry.GetHandlers(event.EventType())
	if len(handlers) == 0 {
		b.logger.Debug("no handler for event type, skipping",
			zap.String("bus", b.name),
			zap.String("event_type", event.EventType()),
		)
		return
	}

	for _, handler := range handlers {
		if err := b.dispatchToHandler(ctx, handler, event); err != nil {
			// Log error but continue with other handlers
			b.logger.Error("handler failed to process event",
				zap.String("bus", b.name),
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

// dispatchToHandler safely dispatches an event to a handler
func (b *ChannelEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("bus", b.name),
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, event)
}

// Ensure ChannelEventBus implements EventBus
var _ shared.EventBus = (*ChannelEventBus)(nil)
