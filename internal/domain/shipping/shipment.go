package shipping

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// ShipmentStatus represents the status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusShipped   ShipmentStatus = "SHIPPED"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

// IsValid checks if the status is a valid ShipmentStatus
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of ShipmentStatus
func (s ShipmentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	switch s {
	case ShipmentStatusPending:
		return target == ShipmentStatusShipped
	case ShipmentStatusShipped:
		return target == ShipmentStatusDelivered
	case ShipmentStatusDelivered:
		return false // Terminal state
	}
	return false
}

// OrderReference is the shipping context's name for the order id it
// received from order-taking
type OrderReference struct {
	value string
}

// NewOrderReference creates a new OrderReference
func NewOrderReference(value string) (OrderReference, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderReference{}, fmt.Errorf("order reference cannot be empty")
	}
	return OrderReference{value: value}, nil
}

// Value returns the raw reference
func (r OrderReference) Value() string { return r.value }

// String returns the raw reference
func (r OrderReference) String() string { return r.value }

// TrackingNumber identifies a parcel with the carrier
type TrackingNumber struct {
	value string
}

// NewTrackingNumber creates a TrackingNumber from an existing value
func NewTrackingNumber(value string) (TrackingNumber, error) {
	if value == "" {
		return TrackingNumber{}, fmt.Errorf("tracking number cannot be empty")
	}
	return TrackingNumber{value: value}, nil
}

// GenerateTrackingNumber produces a fresh carrier tracking number of
// the form TRK-XXXXXXXX
func GenerateTrackingNumber() TrackingNumber {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return TrackingNumber{value: "TRK-" + suffix}
}

// Value returns the raw tracking number
func (n TrackingNumber) Value() string { return n.value }

// String returns the raw tracking number
func (n TrackingNumber) String() string { return n.value }

// IsEmpty returns true when no tracking number has been assigned
func (n TrackingNumber) IsEmpty() bool { return n.value == "" }

// ShipmentItem is one parcel line. Product code and quantity are shared
// kernel types with the ordering context; price is deliberately absent
// here, the carrier does not care what the customer paid.
type ShipmentItem struct {
	ProductCode ordering.ProductCode
	Quantity    ordering.OrderQuantity
}

// Shipment is the shipping context's aggregate root. It moves through
// Pending → Shipped → Delivered; only the Pending → Shipped transition
// is implemented here.
type Shipment struct {
	ID              uuid.UUID
	OrderReference  OrderReference
	CustomerName    valueobject.PersonalName
	ShippingAddress valueobject.Address
	Items           []ShipmentItem
	Status          ShipmentStatus
	TrackingNumber  TrackingNumber
	ShippedAt       *time.Time
}

// NewPendingShipment creates a shipment awaiting dispatch
func NewPendingShipment(
	orderRef OrderReference,
	customerName valueobject.PersonalName,
	address valueobject.Address,
	items []ShipmentItem,
) (*Shipment, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SHIPMENT", "Shipment must contain at least one item")
	}
	return &Shipment{
		ID:              uuid.New(),
		OrderReference:  orderRef,
		CustomerName:    customerName,
		ShippingAddress: address,
		Items:           items,
		Status:          ShipmentStatusPending,
	}, nil
}

// MarkAsShipped transitions a pending shipment to shipped, stamping a
// generated tracking number and the current time. The receiver is not
// mutated; the shipped shipment is returned as a new value.
func (s *Shipment) MarkAsShipped(now time.Time) (*Shipment, error) {
	if !s.Status.CanTransitionTo(ShipmentStatusShipped) {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot ship a shipment in status %s", s.Status))
	}

	shipped := *s
	shipped.Items = append([]ShipmentItem(nil), s.Items...)
	shipped.Status = ShipmentStatusShipped
	shipped.TrackingNumber = GenerateTrackingNumber()
	shipped.ShippedAt = &now
	return &shipped, nil
}
