package collaborator

import (
	"context"

	appordering "github.com/orderflow/backend/internal/application/ordering"
	"github.com/orderflow/backend/internal/domain/ordering"
)

// StaticAddressChecker implements AddressChecker without a remote
// address service: every address is confirmed as-is, except those whose
// city appears on a reject list. The reject list exists so deployments
// without a real address service can still exercise the not-found path.
type StaticAddressChecker struct {
	rejected map[string]struct{}
}

// NewStaticAddressChecker creates a checker that confirms every address
func NewStaticAddressChecker(rejectedCities ...string) *StaticAddressChecker {
	rejected := make(map[string]struct{}, len(rejectedCities))
	for _, city := range rejectedCities {
		rejected[city] = struct{}{}
	}
	return &StaticAddressChecker{rejected: rejected}
}

// Check confirms the address unchanged, or reports it as not found when
// its city is on the reject list
func (c *StaticAddressChecker) Check(_ context.Context, address ordering.UnvalidatedAddress) (appordering.CheckedAddress, error) {
	if _, ok := c.rejected[address.City]; ok {
		return appordering.CheckedAddress{}, appordering.ErrAddressNotFound
	}
	return appordering.CheckedAddress{
		Street:  address.Street,
		City:    address.City,
		ZipCode: address.ZipCode,
	}, nil
}
