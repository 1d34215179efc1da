package ordering

import (
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced         = "OrderPlaced"
	EventTypeBillableOrderPlaced = "BillableOrderPlaced"
	EventTypeAcknowledgmentSent  = "AcknowledgmentSent"
)

// OrderPlacedLine is the line projection carried by OrderPlacedEvent
type OrderPlacedLine struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderPlacedEvent is raised for every successfully placed order. It
// carries the full priced-order projection so downstream contexts need
// no callback into order-taking.
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID         string                   `json:"order_id"`
	CustomerName    valueobject.PersonalName `json:"customer_name"`
	CustomerEmail   string                   `json:"customer_email"`
	ShippingAddress valueobject.Address      `json:"shipping_address"`
	BillingAddress  valueobject.Address      `json:"billing_address"`
	Lines           []OrderPlacedLine        `json:"lines"`
	AmountToBill    decimal.Decimal          `json:"amount_to_bill"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent from a priced order
func NewOrderPlacedEvent(po *PricedOrder) *OrderPlacedEvent {
	lines := make([]OrderPlacedLine, len(po.Lines))
	for i, line := range po.Lines {
		lines[i] = OrderPlacedLine{
			OrderLineID: line.ID.Value(),
			ProductCode: line.ProductCode.Value(),
			Quantity:    line.Quantity.Decimal(),
			Price:       line.LinePrice.Amount(),
		}
	}
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, po.ID.Value()),
		OrderID:         po.ID.Value(),
		CustomerName:    po.CustomerInfo.Name(),
		CustomerEmail:   po.CustomerInfo.Email().Value(),
		ShippingAddress: po.ShippingAddress,
		BillingAddress:  po.BillingAddress,
		Lines:           lines,
		AmountToBill:    po.AmountToBill.Amount(),
	}
}

// EventType returns the event type name
func (e *OrderPlacedEvent) EventType() string {
	return EventTypeOrderPlaced
}

// BillableOrderPlacedEvent is raised only when an order has a positive
// billing amount
type BillableOrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID        string              `json:"order_id"`
	BillingAddress valueobject.Address `json:"billing_address"`
	AmountToBill   decimal.Decimal     `json:"amount_to_bill"`
}

// NewBillableOrderPlacedEvent creates a new BillableOrderPlacedEvent
func NewBillableOrderPlacedEvent(po *PricedOrder) *BillableOrderPlacedEvent {
	return &BillableOrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillableOrderPlaced, AggregateTypeOrder, po.ID.Value()),
		OrderID:         po.ID.Value(),
		BillingAddress:  po.BillingAddress,
		AmountToBill:    po.AmountToBill.Amount(),
	}
}

// EventType returns the event type name
func (e *BillableOrderPlacedEvent) EventType() string {
	return EventTypeBillableOrderPlaced
}

// AcknowledgmentSentEvent is raised only when the acknowledgment mail
// collaborator confirmed delivery
type AcknowledgmentSentEvent struct {
	shared.BaseDomainEvent
	OrderID      string `json:"order_id"`
	EmailAddress string `json:"email_address"`
}

// NewAcknowledgmentSentEvent creates a new AcknowledgmentSentEvent
func NewAcknowledgmentSentEvent(po *PricedOrder) *AcknowledgmentSentEvent {
	return &AcknowledgmentSentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAcknowledgmentSent, AggregateTypeOrder, po.ID.Value()),
		OrderID:         po.ID.Value(),
		EmailAddress:    po.CustomerInfo.Email().Value(),
	}
}

// EventType returns the event type name
func (e *AcknowledgmentSentEvent) EventType() string {
	return EventTypeAcknowledgmentSent
}
