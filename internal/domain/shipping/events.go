package shipping

import (
	"time"

	"github.com/orderflow/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeShipment = "Shipment"

// Event type constants
const (
	EventTypeOrderShipped = "OrderShipped"
)

// OrderShippedEvent is raised when a shipment leaves the warehouse
type OrderShippedEvent struct {
	shared.BaseDomainEvent
	OrderID        string    `json:"order_id"`
	ShipmentID     string    `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	ShippedAt      time.Time `json:"shipped_at"`
}

// NewOrderShippedEvent creates a new OrderShippedEvent from a shipped
// shipment
func NewOrderShippedEvent(s *Shipment) *OrderShippedEvent {
	var shippedAt time.Time
	if s.ShippedAt != nil {
		shippedAt = *s.ShippedAt
	}
	return &OrderShippedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderShipped, AggregateTypeShipment, s.ID.String()),
		OrderID:         s.OrderReference.Value(),
		ShipmentID:      s.ID.String(),
		TrackingNumber:  s.TrackingNumber.Value(),
		ShippedAt:       shippedAt,
	}
}

// EventType returns the event type name
func (e *OrderShippedEvent) EventType() string {
	return EventTypeOrderShipped
}
