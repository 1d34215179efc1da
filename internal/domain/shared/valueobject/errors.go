package valueobject

// ValidationError reports which field of a value object violated which
// rule. Factories return it instead of a generic message so callers can
// attribute the failure to a concrete input field.
type ValidationError struct {
	Field string
	Rule  string
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Rule
}
