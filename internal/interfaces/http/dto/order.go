package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// CustomerInfoRequest is the raw customer block of an order form
type CustomerInfoRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required"`
}

// AddressRequest is the raw address block of an order form
type AddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
}

// OrderLineRequest is one raw line of an order form
type OrderLineRequest struct {
	OrderLineID string  `json:"orderLineId" binding:"required"`
	ProductCode string  `json:"productCode" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
}

// OrderFormRequest is the request body for placing an order. Binding
// only checks presence; the workflow does the real validation so every
// bad field is reported at once.
type OrderFormRequest struct {
	OrderID         string               `json:"orderId" binding:"required"`
	CustomerInfo    CustomerInfoRequest  `json:"customerInfo" binding:"required"`
	ShippingAddress AddressRequest       `json:"shippingAddress" binding:"required"`
	BillingAddress  AddressRequest       `json:"billingAddress" binding:"required"`
	Lines           []OrderLineRequest   `json:"lines" binding:"required,dive"`
}

// ToUnvalidatedOrder maps the request body to the workflow's input
func (r OrderFormRequest) ToUnvalidatedOrder() ordering.UnvalidatedOrder {
	lines := make([]ordering.UnvalidatedOrderLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = ordering.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		}
	}
	return ordering.UnvalidatedOrder{
		OrderID: r.OrderID,
		CustomerInfo: ordering.UnvalidatedCustomerInfo{
			FirstName:    r.CustomerInfo.FirstName,
			LastName:     r.CustomerInfo.LastName,
			EmailAddress: r.CustomerInfo.EmailAddress,
		},
		ShippingAddress: ordering.UnvalidatedAddress{
			Street:  r.ShippingAddress.Street,
			City:    r.ShippingAddress.City,
			ZipCode: r.ShippingAddress.ZipCode,
		},
		BillingAddress: ordering.UnvalidatedAddress{
			Street:  r.BillingAddress.Street,
			City:    r.BillingAddress.City,
			ZipCode: r.BillingAddress.ZipCode,
		},
		Lines: lines,
	}
}

// OrderLineResponse is one priced line in the OrderPlaced payload
type OrderLineResponse struct {
	OrderLineID string          `json:"orderLineId"`
	ProductCode string          `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// AddressResponse mirrors AddressRequest on the way out
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// EventResponse is the wire form of one workflow event
type EventResponse struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// OrderPlacedPayload is the full order projection carried by the
// OrderPlaced event
type OrderPlacedPayload struct {
	OrderID         string              `json:"orderId"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	ShippingAddress AddressResponse     `json:"shippingAddress"`
	BillingAddress  AddressResponse     `json:"billingAddress"`
	Lines           []OrderLineResponse `json:"lines"`
	AmountToBill    decimal.Decimal     `json:"amountToBill"`
}

// BillableOrderPlacedPayload is carried by the BillableOrderPlaced event
type BillableOrderPlacedPayload struct {
	OrderID        string          `json:"orderId"`
	BillingAddress AddressResponse `json:"billingAddress"`
	AmountToBill   decimal.Decimal `json:"amountToBill"`
}

// AcknowledgmentSentPayload is carried by the AcknowledgmentSent event
type AcknowledgmentSentPayload struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

// FromDomainEvents converts workflow events to their wire form,
// preserving order
func FromDomainEvents(events []shared.DomainEvent) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, EventResponse{
			EventID:    event.EventID().String(),
			EventType:  event.EventType(),
			OccurredAt: event.OccurredAt(),
			Payload:    payloadFor(event),
		})
	}
	return responses
}

func toAddressResponse(address valueobject.Address) AddressResponse {
	return AddressResponse{
		Street:  address.Street(),
		City:    address.City(),
		ZipCode: address.ZipCode(),
	}
}

func payloadFor(event shared.DomainEvent) interface{} {
	switch e := event.(type) {
	case *ordering.OrderPlacedEvent:
		lines := make([]OrderLineResponse, len(e.Lines))
		for i, line := range e.Lines {
			lines[i] = OrderLineResponse{
				OrderLineID: line.OrderLineID,
				ProductCode: line.ProductCode,
				Quantity:    line.Quantity,
				Price:       line.Price,
			}
		}
		return OrderPlacedPayload{
			OrderID:         e.OrderID,
			CustomerName:    e.CustomerName.FullName(),
			CustomerEmail:   e.CustomerEmail,
			ShippingAddress: toAddressResponse(e.ShippingAddress),
			BillingAddress:  toAddressResponse(e.BillingAddress),
			Lines:           lines,
			AmountToBill:    e.AmountToBill,
		}
	case *ordering.BillableOrderPlacedEvent:
		return BillableOrderPlacedPayload{
			OrderID:        e.OrderID,
			BillingAddress: toAddressResponse(e.BillingAddress),
			AmountToBill:   e.AmountToBill,
		}
	case *ordering.AcknowledgmentSentEvent:
		return AcknowledgmentSentPayload{
			OrderID:      e.OrderID,
			EmailAddress: e.EmailAddress,
		}
	default:
		return event
	}
}
