package ordering

import (
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// CustomerInfo holds the validated identity of the ordering customer
type CustomerInfo struct {
	name  valueobject.PersonalName
	email valueobject.EmailAddress
}

// NewCustomerInfo creates a new CustomerInfo
func NewCustomerInfo(name valueobject.PersonalName, email valueobject.EmailAddress) CustomerInfo {
	return CustomerInfo{name: name, email: email}
}

// Name returns the customer's name
func (c CustomerInfo) Name() valueobject.PersonalName {
	return c.name
}

// Email returns the customer's email address
func (c CustomerInfo) Email() valueobject.EmailAddress {
	return c.email
}

// Equals returns true if both customer infos are equal
func (c CustomerInfo) Equals(other CustomerInfo) bool {
	return c.name.Equals(other.name) && c.email.Equals(other.email)
}
