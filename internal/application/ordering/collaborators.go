package ordering

import (
	"context"
	"errors"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// ErrAddressNotFound is returned by an AddressChecker that reached the
// address service and was told the address does not exist. It maps to a
// validation failure, unlike transport errors, which map to
// RemoteServiceFailure.
var ErrAddressNotFound = errors.New("address not found")

// CheckedAddress is an address the address service has confirmed
type CheckedAddress struct {
	Street  string
	City    string
	ZipCode string
}

// AddressChecker verifies an address against an external address
// service
type AddressChecker interface {
	Check(ctx context.Context, address ordering.UnvalidatedAddress) (CheckedAddress, error)
}

// ProductCodeChecker answers whether a product code refers to a product
// that actually exists in the catalog
type ProductCodeChecker interface {
	Exists(ctx context.Context, code ordering.ProductCode) (bool, error)
}

// ProductPricer looks up the current unit price for a product
type ProductPricer interface {
	Price(ctx context.Context, code ordering.ProductCode) (valueobject.Price, error)
}

// Letter is a rendered acknowledgment mail body
type Letter struct {
	HTML string
}

// Acknowledgment pairs a rendered letter with its recipient
type Acknowledgment struct {
	EmailAddress valueobject.EmailAddress
	Letter       Letter
}

// SendOutcome reports whether an acknowledgment reached the customer
type SendOutcome int

const (
	// SendOutcomeNotSent means delivery was not confirmed
	SendOutcomeNotSent SendOutcome = iota
	// SendOutcomeSent means the mail collaborator confirmed delivery
	SendOutcomeSent
)

// LetterRenderer builds the acknowledgment letter for a priced order.
// Rendering is local and cannot fail.
type LetterRenderer interface {
	Render(order *ordering.PricedOrder) Letter
}

// AcknowledgmentSender delivers an acknowledgment to the customer.
// Errors and NotSent outcomes are treated the same by the workflow: the
// acknowledgment is simply recorded as not sent.
type AcknowledgmentSender interface {
	Send(ctx context.Context, ack Acknowledgment) (SendOutcome, error)
}
