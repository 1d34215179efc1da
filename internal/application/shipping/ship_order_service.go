package shipping

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
	"github.com/orderflow/backend/internal/domain/shipping"
)

// ShipOrderCommand carries everything the shipping context needs to
// dispatch an order. Prices never appear here.
type ShipOrderCommand struct {
	OrderReference  shipping.OrderReference
	CustomerName    valueobject.PersonalName
	ShippingAddress valueobject.Address
	Items           []shipping.ShipmentItem
}

// ShipOrderService dispatches orders. It owns the shipping side of the
// order lifecycle: a pending shipment is created, goes out the door
// with a tracking number, and an OrderShipped event is published.
type ShipOrderService struct {
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewShipOrderService creates a new ShipOrderService
func NewShipOrderService(publisher shared.EventPublisher, logger *zap.Logger) *ShipOrderService {
	return &ShipOrderService{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ShipOrder builds a pending shipment from the command, marks it
// shipped and publishes the resulting OrderShipped event
func (s *ShipOrderService) ShipOrder(ctx context.Context, cmd ShipOrderCommand) (*shipping.Shipment, error) {
	pending, err := shipping.NewPendingShipment(cmd.OrderReference, cmd.CustomerName, cmd.ShippingAddress, cmd.Items)
	if err != nil {
		s.logger.Warn("shipment rejected",
			zap.String("order_ref", cmd.OrderReference.Value()),
			zap.Error(err))
		return nil, err
	}

	shipped, err := pending.MarkAsShipped(s.now())
	if err != nil {
		s.logger.Warn("shipment dispatch rejected",
			zap.String("order_ref", pending.OrderReference.Value()),
			zap.String("status", pending.Status.String()),
			zap.Error(err))
		return nil, err
	}

	event := shipping.NewOrderShippedEvent(shipped)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("event publication failed",
			zap.String("order_ref", shipped.OrderReference.Value()),
			zap.String("event_type", event.EventType()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("order shipped",
		zap.String("order_ref", shipped.OrderReference.Value()),
		zap.String("shipment_id", shipped.ID.String()),
		zap.String("tracking_number", shipped.TrackingNumber.Value()))

	return shipped, nil
}
