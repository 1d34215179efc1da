package valueobject

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately loose: one "@" with something on both
// sides. Actual deliverability is the mail collaborator's problem.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+$`)

// EmailAddress is a value object representing a customer email address
type EmailAddress struct {
	value string
}

// NewEmailAddress creates a new EmailAddress
func NewEmailAddress(value string) (EmailAddress, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return EmailAddress{}, NewValidationError("emailAddress", "cannot be empty")
	}
	if !emailPattern.MatchString(value) {
		return EmailAddress{}, NewValidationError("emailAddress", "must contain a single @ separator")
	}
	return EmailAddress{value: value}, nil
}

// MustNewEmailAddress creates a new EmailAddress, panics on error
func MustNewEmailAddress(value string) EmailAddress {
	e, err := NewEmailAddress(value)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns the raw email address
func (e EmailAddress) Value() string {
	return e.value
}

// String returns the raw email address
func (e EmailAddress) String() string {
	return e.value
}

// Equals returns true if both email addresses are equal
func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}

// MarshalJSON implements json.Marshaler
func (e EmailAddress) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler via the validating factory
func (e *EmailAddress) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	addr, err := NewEmailAddress(s)
	if err != nil {
		return err
	}
	*e = addr
	return nil
}
