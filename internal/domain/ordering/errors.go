package ordering

import (
	"fmt"
	"strings"
)

// Error codes surfaced at the HTTP boundary
const (
	ErrorCodeValidation    = "ValidationError"
	ErrorCodePricing       = "PricingError"
	ErrorCodeRemoteService = "RemoteServiceError"
)

// PlaceOrderError is the closed union of failures the PlaceOrder
// workflow can surface. Exactly one variant describes any failed run:
// ValidationFailure, PricingFailure or RemoteServiceFailure.
type PlaceOrderError interface {
	error
	// Code returns the wire-level error code for this variant
	Code() string
	isPlaceOrderError()
}

// FieldError describes a single rejected field
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Description
}

// ValidationFailure reports every field the validation stage rejected.
// The workflow collects all field errors in one pass instead of failing
// on the first, so a caller can fix a bad request in one round trip.
type ValidationFailure struct {
	Fields []FieldError
}

// NewValidationFailure creates a ValidationFailure from field errors
func NewValidationFailure(fields []FieldError) *ValidationFailure {
	return &ValidationFailure{Fields: fields}
}

// Error implements the error interface
func (e *ValidationFailure) Error() string {
	if len(e.Fields) == 0 {
		return "order validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "order validation failed: " + strings.Join(parts, "; ")
}

// Code returns the validation error code
func (e *ValidationFailure) Code() string { return ErrorCodeValidation }

func (e *ValidationFailure) isPlaceOrderError() {}

// PricingFailure reports a failed price lookup. No partial pricing: a
// single failing line fails the whole order.
type PricingFailure struct {
	ProductCode string
	Err         error
}

// Error implements the error interface
func (e *PricingFailure) Error() string {
	return fmt.Sprintf("pricing failed for product %s: %v", e.ProductCode, e.Err)
}

// Unwrap returns the underlying collaborator error
func (e *PricingFailure) Unwrap() error { return e.Err }

// Code returns the pricing error code
func (e *PricingFailure) Code() string { return ErrorCodePricing }

func (e *PricingFailure) isPlaceOrderError() {}

// RemoteServiceFailure reports that an external collaborator call
// failed outright, as opposed to checking the input and rejecting it.
type RemoteServiceFailure struct {
	Service string
	Err     error
}

// Error implements the error interface
func (e *RemoteServiceFailure) Error() string {
	return fmt.Sprintf("remote service %s failed: %v", e.Service, e.Err)
}

// Unwrap returns the underlying collaborator error
func (e *RemoteServiceFailure) Unwrap() error { return e.Err }

// Code returns the remote service error code
func (e *RemoteServiceFailure) Code() string { return ErrorCodeRemoteService }

func (e *RemoteServiceFailure) isPlaceOrderError() {}
