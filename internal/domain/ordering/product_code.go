package ordering

import (
	"fmt"
	"regexp"
)

var (
	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode is a closed union of product code variants. The variant
// determines which quantity kind a line may carry: widgets are counted
// in units, gizmos are weighed in kilograms.
//
// The only implementations are WidgetCode and GizmoCode; consumers
// dispatch with an exhaustive type switch.
type ProductCode interface {
	Value() string
	String() string
	isProductCode()
}

// WidgetCode is a product code of the form W followed by four digits
type WidgetCode struct {
	value string
}

// NewWidgetCode creates a new WidgetCode
func NewWidgetCode(value string) (WidgetCode, error) {
	if !widgetCodePattern.MatchString(value) {
		return WidgetCode{}, fmt.Errorf("widget code must match W followed by 4 digits, got %q", value)
	}
	return WidgetCode{value: value}, nil
}

// Value returns the raw code
func (c WidgetCode) Value() string { return c.value }

// String returns the raw code
func (c WidgetCode) String() string { return c.value }

func (c WidgetCode) isProductCode() {}

// GizmoCode is a product code of the form G followed by three digits
type GizmoCode struct {
	value string
}

// NewGizmoCode creates a new GizmoCode
func NewGizmoCode(value string) (GizmoCode, error) {
	if !gizmoCodePattern.MatchString(value) {
		return GizmoCode{}, fmt.Errorf("gizmo code must match G followed by 3 digits, got %q", value)
	}
	return GizmoCode{value: value}, nil
}

// Value returns the raw code
func (c GizmoCode) Value() string { return c.value }

// String returns the raw code
func (c GizmoCode) String() string { return c.value }

func (c GizmoCode) isProductCode() {}

// ParseProductCode constructs the matching ProductCode variant for a
// raw code, or fails when the code matches neither pattern.
func ParseProductCode(value string) (ProductCode, error) {
	switch {
	case widgetCodePattern.MatchString(value):
		return WidgetCode{value: value}, nil
	case gizmoCodePattern.MatchString(value):
		return GizmoCode{value: value}, nil
	default:
		return nil, fmt.Errorf("product code %q matches neither the widget (W1234) nor the gizmo (G123) format", value)
	}
}

// MustParseProductCode parses a product code, panics on error
func MustParseProductCode(value string) ProductCode {
	code, err := ParseProductCode(value)
	if err != nil {
		panic(err)
	}
	return code
}
