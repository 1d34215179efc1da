package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxNamePartLength = 50

// PersonalName is a value object representing a person's name.
// Both parts are required and limited to 50 characters.
type PersonalName struct {
	firstName string
	lastName  string
}

// NewPersonalName creates a new PersonalName
func NewPersonalName(firstName, lastName string) (PersonalName, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if err := validateNamePart("firstName", firstName); err != nil {
		return PersonalName{}, err
	}
	if err := validateNamePart("lastName", lastName); err != nil {
		return PersonalName{}, err
	}

	return PersonalName{firstName: firstName, lastName: lastName}, nil
}

// MustNewPersonalName creates a new PersonalName, panics on error
func MustNewPersonalName(firstName, lastName string) PersonalName {
	n, err := NewPersonalName(firstName, lastName)
	if err != nil {
		panic(err)
	}
	return n
}

// FirstName returns the first name
func (n PersonalName) FirstName() string {
	return n.firstName
}

// LastName returns the last name
func (n PersonalName) LastName() string {
	return n.lastName
}

// FullName returns "First Last"
func (n PersonalName) FullName() string {
	return n.firstName + " " + n.lastName
}

// String returns the full name
func (n PersonalName) String() string {
	return n.FullName()
}

// Equals returns true if both names are equal
func (n PersonalName) Equals(other PersonalName) bool {
	return n.firstName == other.firstName && n.lastName == other.lastName
}

// personalNameJSON is used for JSON marshaling/unmarshaling
type personalNameJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// MarshalJSON implements json.Marshaler
func (n PersonalName) MarshalJSON() ([]byte, error) {
	return json.Marshal(personalNameJSON{
		FirstName: n.firstName,
		LastName:  n.lastName,
	})
}

// UnmarshalJSON implements json.Unmarshaler via the validating factory
func (n *PersonalName) UnmarshalJSON(data []byte) error {
	var v personalNameJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	name, err := NewPersonalName(v.FirstName, v.LastName)
	if err != nil {
		return err
	}
	*n = name
	return nil
}

func validateNamePart(field, value string) error {
	if value == "" {
		return NewValidationError(field, "cannot be empty")
	}
	if utf8.RuneCountInString(value) > maxNamePartLength {
		return NewValidationError(field, fmt.Sprintf("cannot exceed %d characters", maxNamePartLength))
	}
	return nil
}
