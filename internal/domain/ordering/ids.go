package ordering

import (
	"fmt"
	"strings"
)

const maxOrderIDLength = 50

// OrderID identifies an order in the order-taking context.
// Non-empty, at most 50 characters.
type OrderID struct {
	value string
}

// NewOrderID creates a new OrderID
func NewOrderID(value string) (OrderID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderID{}, fmt.Errorf("order id cannot be empty")
	}
	if len(value) > maxOrderIDLength {
		return OrderID{}, fmt.Errorf("order id cannot exceed %d characters", maxOrderIDLength)
	}
	return OrderID{value: value}, nil
}

// MustNewOrderID creates a new OrderID, panics on error
func MustNewOrderID(value string) OrderID {
	id, err := NewOrderID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the raw order id
func (id OrderID) Value() string {
	return id.value
}

// String returns the raw order id
func (id OrderID) String() string {
	return id.value
}

// Equals returns true if both ids are equal
func (id OrderID) Equals(other OrderID) bool {
	return id.value == other.value
}

// OrderLineID identifies a line within an order
type OrderLineID struct {
	value string
}

// NewOrderLineID creates a new OrderLineID
func NewOrderLineID(value string) (OrderLineID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderLineID{}, fmt.Errorf("order line id cannot be empty")
	}
	return OrderLineID{value: value}, nil
}

// MustNewOrderLineID creates a new OrderLineID, panics on error
func MustNewOrderLineID(value string) OrderLineID {
	id, err := NewOrderLineID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the raw line id
func (id OrderLineID) Value() string {
	return id.value
}

// String returns the raw line id
func (id OrderLineID) String() string {
	return id.value
}

// Equals returns true if both ids are equal
func (id OrderLineID) Equals(other OrderLineID) bool {
	return id.value == other.value
}
