package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
)

// Collaborator names used in RemoteServiceFailure reports
const (
	serviceAddress = "AddressService"
	serviceCatalog = "CatalogService"
)

// fieldCollector accumulates field errors across the whole order so a
// caller sees every rejected field at once instead of fixing them one
// round trip at a time.
type fieldCollector struct {
	fields []ordering.FieldError
}

func (c *fieldCollector) add(field, description string) {
	c.fields = append(c.fields, ordering.FieldError{Field: field, Description: description})
}

// addErr records err under prefix+field when it carries field
// attribution, or under fallback otherwise.
func (c *fieldCollector) addErr(prefix, fallback string, err error) {
	var ve *valueobject.ValidationError
	if errors.As(err, &ve) {
		c.add(prefix+ve.Field, ve.Rule)
		return
	}
	c.add(fallback, err.Error())
}

func (c *fieldCollector) failed() bool {
	return len(c.fields) > 0
}

// validateOrder turns an unvalidated order into a validated one.
// Local field checks are collected into a single ValidationFailure;
// collaborator transport errors abort immediately with a
// RemoteServiceFailure.
func (s *PlaceOrderService) validateOrder(ctx context.Context, order ordering.UnvalidatedOrder) (*ordering.ValidatedOrder, error) {
	collector := &fieldCollector{}

	orderID, err := ordering.NewOrderID(order.OrderID)
	if err != nil {
		collector.addErr("", "orderId", err)
	}

	customer, err := s.validateCustomerInfo(order.CustomerInfo, collector)
	if err != nil {
		return nil, err
	}

	shippingAddress, err := s.validateAddress(ctx, "shippingAddress", order.ShippingAddress, collector)
	if err != nil {
		return nil, err
	}
	billingAddress, err := s.validateAddress(ctx, "billingAddress", order.BillingAddress, collector)
	if err != nil {
		return nil, err
	}

	if len(order.Lines) == 0 {
		collector.add("orderLines", "must contain at least one line")
	}
	lines := make([]ordering.ValidatedOrderLine, 0, len(order.Lines))
	for i, line := range order.Lines {
		validated, err := s.validateOrderLine(ctx, i, line, collector)
		if err != nil {
			return nil, err
		}
		if validated != nil {
			lines = append(lines, *validated)
		}
	}

	if collector.failed() {
		return nil, ordering.NewValidationFailure(collector.fields)
	}

	validated, err := ordering.NewValidatedOrder(orderID, customer, shippingAddress, billingAddress, lines)
	if err != nil {
		return nil, ordering.NewValidationFailure([]ordering.FieldError{
			{Field: "orderLines", Description: err.Error()},
		})
	}
	return validated, nil
}

func (s *PlaceOrderService) validateCustomerInfo(info ordering.UnvalidatedCustomerInfo, collector *fieldCollector) (ordering.CustomerInfo, error) {
	name, err := valueobject.NewPersonalName(info.FirstName, info.LastName)
	if err != nil {
		collector.addErr("customerInfo.", "customerInfo", err)
	}
	email, err := valueobject.NewEmailAddress(info.EmailAddress)
	if err != nil {
		collector.addErr("customerInfo.", "customerInfo.emailAddress", err)
	}
	return ordering.NewCustomerInfo(name, email), nil
}

// validateAddress checks the address remotely, then parses the checked
// form into a value object. An address the checker rejects becomes a
// field error; a checker that cannot be reached aborts the workflow.
func (s *PlaceOrderService) validateAddress(ctx context.Context, prefix string, address ordering.UnvalidatedAddress, collector *fieldCollector) (valueobject.Address, error) {
	checked, err := s.addressChecker.Check(ctx, address)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			collector.add(prefix, "address not found")
			return valueobject.Address{}, nil
		}
		return valueobject.Address{}, &ordering.RemoteServiceFailure{Service: serviceAddress, Err: err}
	}

	parsed, err := valueobject.NewAddress(checked.Street, checked.City, checked.ZipCode)
	if err != nil {
		collector.addErr(prefix+".", prefix, err)
		return valueobject.Address{}, nil
	}
	return parsed, nil
}

func (s *PlaceOrderService) validateOrderLine(ctx context.Context, index int, line ordering.UnvalidatedOrderLine, collector *fieldCollector) (*ordering.ValidatedOrderLine, error) {
	path := fmt.Sprintf("orderLines[%d]", index)

	lineID, err := ordering.NewOrderLineID(line.OrderLineID)
	if err != nil {
		collector.add(path+".orderLineId", err.Error())
	}

	code, err := ordering.ParseProductCode(line.ProductCode)
	if err != nil {
		collector.add(path+".productCode", err.Error())
		// quantity rules depend on the product code, so stop here
		return nil, nil
	}

	exists, err := s.codeChecker.Exists(ctx, code)
	if err != nil {
		return nil, &ordering.RemoteServiceFailure{Service: serviceCatalog, Err: err}
	}
	if !exists {
		collector.add(path+".productCode", fmt.Sprintf("product %s does not exist", code.Value()))
		return nil, nil
	}

	quantity, err := ordering.NewOrderQuantity(code, decimal.NewFromFloat(line.Quantity))
	if err != nil {
		collector.add(path+".quantity", err.Error())
		return nil, nil
	}

	return &ordering.ValidatedOrderLine{
		ID:          lineID,
		ProductCode: code,
		Quantity:    quantity,
	}, nil
}
