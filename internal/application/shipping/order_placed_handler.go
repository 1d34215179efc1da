package shipping

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shipping"
)

// OrderPlacedHandler listens on the order-taking context's OrderPlaced
// events and translates them into the shipping context's own model: a
// pending shipment. Billing details never cross the boundary; only the
// order reference, the recipient and the parcel lines do.
type OrderPlacedHandler struct {
	shipService *ShipOrderService
	logger      *zap.Logger
}

// NewOrderPlacedHandler creates a new handler for order placed events
func NewOrderPlacedHandler(shipService *ShipOrderService, logger *zap.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		shipService: shipService,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{ordering.EventTypeOrderPlaced}
}

// Handle translates an OrderPlacedEvent into a pending shipment and
// dispatches it
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placedEvent, ok := event.(*ordering.OrderPlacedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", ordering.EventTypeOrderPlaced),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			ordering.EventTypeOrderPlaced, event.EventType())
	}

	cmd, err := h.translate(placedEvent)
	if err != nil {
		h.logger.Error("order placed event rejected at the shipping boundary",
			zap.String("order_id", placedEvent.OrderID),
			zap.Error(err),
		)
		return fmt.Errorf("translate order %s: %w", placedEvent.OrderID, err)
	}

	if _, err := h.shipService.ShipOrder(ctx, cmd); err != nil {
		return fmt.Errorf("ship order %s: %w", placedEvent.OrderID, err)
	}
	return nil
}

// translate maps the foreign event into shipping's own command. Line
// prices and the billing address are dropped on purpose.
func (h *OrderPlacedHandler) translate(event *ordering.OrderPlacedEvent) (ShipOrderCommand, error) {
	orderRef, err := shipping.NewOrderReference(event.OrderID)
	if err != nil {
		return ShipOrderCommand{}, err
	}

	items := make([]shipping.ShipmentItem, 0, len(event.Lines))
	for _, line := range event.Lines {
		code, err := ordering.ParseProductCode(line.ProductCode)
		if err != nil {
			return ShipOrderCommand{}, fmt.Errorf("line %s: %w", line.OrderLineID, err)
		}
		quantity, err := ordering.NewOrderQuantity(code, line.Quantity)
		if err != nil {
			return ShipOrderCommand{}, fmt.Errorf("line %s: %w", line.OrderLineID, err)
		}
		items = append(items, shipping.ShipmentItem{
			ProductCode: code,
			Quantity:    quantity,
		})
	}

	return ShipOrderCommand{
		OrderReference:  orderRef,
		CustomerName:    event.CustomerName,
		ShippingAddress: event.ShippingAddress,
		Items:           items,
	}, nil
}
