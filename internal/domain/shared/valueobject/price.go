package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a value object representing a non-negative monetary amount
// for a single order line.
// It is immutable - all operations return new Price instances.
type Price struct {
	amount decimal.Decimal
}

// NewPrice creates a new Price from a decimal amount
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errors.New("price cannot be negative")
	}
	return Price{amount: amount}, nil
}

// NewPriceFromFloat creates a Price from a float64 value
func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// NewPriceFromInt creates a Price from an int64 value
func NewPriceFromInt(amount int64) (Price, error) {
	return NewPrice(decimal.NewFromInt(amount))
}

// MustNewPrice creates a Price and panics on error
func MustNewPrice(amount decimal.Decimal) Price {
	p, err := NewPrice(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// ZeroPrice returns a zero-value Price
func ZeroPrice() Price {
	return Price{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsZero returns true if the amount is zero
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// Multiply returns a new Price scaled by the given quantity
func (p Price) Multiply(qty decimal.Decimal) (Price, error) {
	return NewPrice(p.amount.Mul(qty))
}

// Add returns a new Price with the sum of both amounts
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

// Equals returns true if both prices are equal
func (p Price) Equals(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the string representation of the amount
func (p Price) String() string {
	return p.amount.String()
}

// MarshalJSON implements json.Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.amount.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler via the validating factory
func (p *Price) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(trimQuotes(string(data)))
	if err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	price, err := NewPrice(d)
	if err != nil {
		return err
	}
	*p = price
	return nil
}

// BillingAmount is a value object representing the non-negative total
// billed for an order. It is always derived from line prices.
type BillingAmount struct {
	amount decimal.Decimal
}

// NewBillingAmount creates a new BillingAmount
func NewBillingAmount(amount decimal.Decimal) (BillingAmount, error) {
	if amount.IsNegative() {
		return BillingAmount{}, errors.New("billing amount cannot be negative")
	}
	return BillingAmount{amount: amount}, nil
}

// MustNewBillingAmount creates a BillingAmount and panics on error
func MustNewBillingAmount(amount decimal.Decimal) BillingAmount {
	b, err := NewBillingAmount(amount)
	if err != nil {
		panic(err)
	}
	return b
}

// ZeroBillingAmount returns a zero-value BillingAmount
func ZeroBillingAmount() BillingAmount {
	return BillingAmount{amount: decimal.Zero}
}

// SumPrices sums a list of line prices into a BillingAmount
func SumPrices(prices []Price) BillingAmount {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.Amount())
	}
	return BillingAmount{amount: total}
}

// Amount returns the decimal amount
func (b BillingAmount) Amount() decimal.Decimal {
	return b.amount
}

// IsZero returns true if the amount is zero
func (b BillingAmount) IsZero() bool {
	return b.amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (b BillingAmount) IsPositive() bool {
	return b.amount.IsPositive()
}

// Equals returns true if both billing amounts are equal
func (b BillingAmount) Equals(other BillingAmount) bool {
	return b.amount.Equal(other.amount)
}

// String returns the string representation of the amount
func (b BillingAmount) String() string {
	return b.amount.String()
}

// MarshalJSON implements json.Marshaler
func (b BillingAmount) MarshalJSON() ([]byte, error) {
	return []byte(b.amount.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler via the validating factory
func (b *BillingAmount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(trimQuotes(string(data)))
	if err != nil {
		return fmt.Errorf("invalid billing amount: %w", err)
	}
	amount, err := NewBillingAmount(d)
	if err != nil {
		return err
	}
	*b = amount
	return nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
