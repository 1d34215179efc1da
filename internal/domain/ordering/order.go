package ordering

import (
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// UnvalidatedCustomerInfo is raw customer data as received from the
// outside world
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress is raw address data as received from the outside
// world
type UnvalidatedAddress struct {
	Street  string
	City    string
	ZipCode string
}

// UnvalidatedOrderLine is raw order line data as received from the
// outside world
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// UnvalidatedOrder is the primitive-only input of the PlaceOrder
// workflow. Nothing in it has been checked.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// ValidatedOrderLine is an order line whose fields all passed validation
type ValidatedOrderLine struct {
	ID          OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
}

// ValidatedOrder is an order whose every field has been replaced by a
// constrained value. Always has at least one line.
type ValidatedOrder struct {
	ID              OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress valueobject.Address
	BillingAddress  valueobject.Address
	Lines           []ValidatedOrderLine
}

// NewValidatedOrder creates a ValidatedOrder, enforcing the non-empty
// lines invariant
func NewValidatedOrder(
	id OrderID,
	customer CustomerInfo,
	shippingAddress, billingAddress valueobject.Address,
	lines []ValidatedOrderLine,
) (*ValidatedOrder, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one line")
	}
	return &ValidatedOrder{
		ID:              id,
		CustomerInfo:    customer,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
		Lines:           lines,
	}, nil
}

// PricedOrderLine is a validated line plus its computed price
type PricedOrderLine struct {
	ID          OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
	LinePrice   valueobject.Price
}

// PricedOrder is a validated order plus per-line prices and the order
// total. AmountToBill is always the sum of the line prices; the factory
// computes it so the invariant cannot drift.
type PricedOrder struct {
	ID              OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress valueobject.Address
	BillingAddress  valueobject.Address
	Lines           []PricedOrderLine
	AmountToBill    valueobject.BillingAmount
}

// NewPricedOrder creates a PricedOrder from a validated order and its
// priced lines, deriving the billing amount
func NewPricedOrder(vo *ValidatedOrder, lines []PricedOrderLine) (*PricedOrder, error) {
	if len(lines) != len(vo.Lines) {
		return nil, shared.NewDomainError("PRICING_INCOMPLETE", "Every order line must be priced")
	}

	prices := make([]valueobject.Price, len(lines))
	for i, line := range lines {
		prices[i] = line.LinePrice
	}

	return &PricedOrder{
		ID:              vo.ID,
		CustomerInfo:    vo.CustomerInfo,
		ShippingAddress: vo.ShippingAddress,
		BillingAddress:  vo.BillingAddress,
		Lines:           lines,
		AmountToBill:    valueobject.SumPrices(prices),
	}, nil
}
