package valueobject

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// zipCodePattern matches Japanese-style postal codes: three digits, an
// optional hyphen, four digits (e.g. "150-0001" or "1500001").
var zipCodePattern = regexp.MustCompile(`^\d{3}-?\d{4}$`)

// Address is a value object representing a physical address.
// It is immutable - all operations return new Address instances.
type Address struct {
	street  string
	city    string
	zipCode string
}

// NewAddress creates a new Address. Street and city must be non-empty;
// the zip code must match the postal code pattern.
func NewAddress(street, city, zipCode string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	zipCode = strings.TrimSpace(zipCode)

	if err := validateStreet(street); err != nil {
		return Address{}, err
	}
	if err := validateCity(city); err != nil {
		return Address{}, err
	}
	if err := validateZipCode(zipCode); err != nil {
		return Address{}, err
	}

	return Address{
		street:  street,
		city:    city,
		zipCode: zipCode,
	}, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(street, city, zipCode string) Address {
	addr, err := NewAddress(street, city, zipCode)
	if err != nil {
		panic(err)
	}
	return addr
}

// Street returns the street
func (a Address) Street() string {
	return a.street
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// ZipCode returns the zip code
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEmpty returns true if the address is empty (all fields are blank)
func (a Address) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.zipCode == ""
}

// String returns the complete formatted address
func (a Address) String() string {
	if a.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.zipCode)
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.zipCode == other.zipCode
}

// addressJSON is used for JSON marshaling/unmarshaling
type addressJSON struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:  a.street,
		City:    a.city,
		ZipCode: a.zipCode,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It delegates to the
// NewAddress factory so deserialized addresses satisfy the same
// validation rules as constructed ones.
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	addr, err := NewAddress(v.Street, v.City, v.ZipCode)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Validation functions

func validateStreet(street string) error {
	if street == "" {
		return NewValidationError("street", "cannot be empty")
	}
	if len(street) > 500 {
		return NewValidationError("street", "cannot exceed 500 characters")
	}
	return nil
}

func validateCity(city string) error {
	if city == "" {
		return NewValidationError("city", "cannot be empty")
	}
	if len(city) > 100 {
		return NewValidationError("city", "cannot exceed 100 characters")
	}
	return nil
}

func validateZipCode(zipCode string) error {
	if !zipCodePattern.MatchString(zipCode) {
		return NewValidationError("zipCode", "must match the format 123-4567")
	}
	return nil
}
