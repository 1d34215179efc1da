package ordering

import (
	"context"
	"errors"

	"github.com/orderflow/backend/internal/domain/ordering"
)

// priceOrder attaches a line price to every validated line and derives
// the order total. The first line that cannot be priced fails the whole
// order; there is no partially priced state.
func (s *PlaceOrderService) priceOrder(ctx context.Context, order *ordering.ValidatedOrder) (*ordering.PricedOrder, error) {
	lines := make([]ordering.PricedOrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		unitPrice, err := s.pricer.Price(ctx, line.ProductCode)
		if err != nil {
			var transport *ordering.RemoteServiceFailure
			if errors.As(err, &transport) {
				return nil, transport
			}
			return nil, &ordering.PricingFailure{ProductCode: line.ProductCode.Value(), Err: err}
		}

		linePrice, err := unitPrice.Multiply(line.Quantity.Decimal())
		if err != nil {
			return nil, &ordering.PricingFailure{ProductCode: line.ProductCode.Value(), Err: err}
		}

		lines = append(lines, ordering.PricedOrderLine{
			ID:          line.ID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			LinePrice:   linePrice,
		})
	}

	priced, err := ordering.NewPricedOrder(order, lines)
	if err != nil {
		return nil, &ordering.PricingFailure{ProductCode: "", Err: err}
	}
	return priced, nil
}
