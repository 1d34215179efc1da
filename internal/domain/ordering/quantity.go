package ordering

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	minUnitQuantity = 1
	maxUnitQuantity = 1000

	minKilogramQuantity = decimal.NewFromFloat(0.05)
	maxKilogramQuantity = decimal.NewFromFloat(100.0)
)

// OrderQuantity is a closed union of quantity variants. Widget lines
// carry a UnitQuantity, gizmo lines a KilogramQuantity; the pairing is
// enforced by NewOrderQuantity.
type OrderQuantity interface {
	// Decimal returns the quantity as a decimal for price arithmetic
	Decimal() decimal.Decimal
	isOrderQuantity()
}

// UnitQuantity counts whole items, between 1 and 1000
type UnitQuantity struct {
	value int
}

// NewUnitQuantity creates a new UnitQuantity
func NewUnitQuantity(value int) (UnitQuantity, error) {
	if value < minUnitQuantity || value > maxUnitQuantity {
		return UnitQuantity{}, fmt.Errorf("unit quantity must be between %d and %d, got %d", minUnitQuantity, maxUnitQuantity, value)
	}
	return UnitQuantity{value: value}, nil
}

// Value returns the number of units
func (q UnitQuantity) Value() int { return q.value }

// Decimal returns the quantity as a decimal
func (q UnitQuantity) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(q.value)) }

func (q UnitQuantity) isOrderQuantity() {}

// KilogramQuantity weighs items, between 0.05 and 100.0 kg
type KilogramQuantity struct {
	value decimal.Decimal
}

// NewKilogramQuantity creates a new KilogramQuantity
func NewKilogramQuantity(value decimal.Decimal) (KilogramQuantity, error) {
	if value.LessThan(minKilogramQuantity) || value.GreaterThan(maxKilogramQuantity) {
		return KilogramQuantity{}, fmt.Errorf("kilogram quantity must be between %s and %s, got %s", minKilogramQuantity, maxKilogramQuantity, value)
	}
	return KilogramQuantity{value: value}, nil
}

// Value returns the weight in kilograms
func (q KilogramQuantity) Value() decimal.Decimal { return q.value }

// Decimal returns the quantity as a decimal
func (q KilogramQuantity) Decimal() decimal.Decimal { return q.value }

func (q KilogramQuantity) isOrderQuantity() {}

// NewOrderQuantity constructs the quantity variant dictated by the
// product code variant: widgets take whole units, gizmos take kilograms.
func NewOrderQuantity(code ProductCode, quantity decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case WidgetCode:
		if !quantity.IsInteger() {
			return nil, fmt.Errorf("unit quantity must be a whole number, got %s", quantity)
		}
		return NewUnitQuantity(int(quantity.IntPart()))
	case GizmoCode:
		return NewKilogramQuantity(quantity)
	default:
		return nil, fmt.Errorf("unknown product code variant %T", code)
	}
}
