package shipping

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shipping"
)

// OrderShippedHandler is the tail of the pipeline: it records every
// shipment the context produces. Carrier integration would hang off
// this handler.
type OrderShippedHandler struct {
	logger *zap.Logger
}

// NewOrderShippedHandler creates a new handler for order shipped events
func NewOrderShippedHandler(logger *zap.Logger) *OrderShippedHandler {
	return &OrderShippedHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderShippedHandler) EventTypes() []string {
	return []string{shipping.EventTypeOrderShipped}
}

// Handle logs the completed shipment
func (h *OrderShippedHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	shippedEvent, ok := event.(*shipping.OrderShippedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", shipping.EventTypeOrderShipped),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			shipping.EventTypeOrderShipped, event.EventType())
	}

	h.logger.Info("shipment dispatched",
		zap.String("order_id", shippedEvent.OrderID),
		zap.String("shipment_id", shippedEvent.ShipmentID),
		zap.String("tracking_number", shippedEvent.TrackingNumber),
		zap.Time("shipped_at", shippedEvent.ShippedAt),
	)
	return nil
}
