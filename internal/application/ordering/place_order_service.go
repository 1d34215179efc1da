package ordering

import (
	"context"

	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
)

// PlaceOrderService runs the PlaceOrder workflow: validate the raw
// order, price it, acknowledge it, then publish the resulting events.
// Each stage feeds the next and the first failure short-circuits the
// rest.
type PlaceOrderService struct {
	addressChecker AddressChecker
	codeChecker    ProductCodeChecker
	pricer         ProductPricer
	renderer       LetterRenderer
	sender         AcknowledgmentSender
	publisher      shared.EventPublisher
	logger         *zap.Logger
}

// NewPlaceOrderService creates a new PlaceOrderService
func NewPlaceOrderService(
	addressChecker AddressChecker,
	codeChecker ProductCodeChecker,
	pricer ProductPricer,
	renderer LetterRenderer,
	sender AcknowledgmentSender,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *PlaceOrderService {
	return &PlaceOrderService{
		addressChecker: addressChecker,
		codeChecker:    codeChecker,
		pricer:         pricer,
		renderer:       renderer,
		sender:         sender,
		publisher:      publisher,
		logger:         logger,
	}
}

// PlaceOrder executes the workflow for one order. On success it returns
// the events it published, in publication order. On failure it returns
// exactly one PlaceOrderError variant and publishes nothing.
func (s *PlaceOrderService) PlaceOrder(ctx context.Context, cmd shared.Command[ordering.UnvalidatedOrder]) ([]shared.DomainEvent, error) {
	order := cmd.Data

	validated, err := s.validateOrder(ctx, order)
	if err != nil {
		s.logFailure(order.OrderID, cmd.UserID, err)
		return nil, err
	}

	priced, err := s.priceOrder(ctx, validated)
	if err != nil {
		s.logFailure(order.OrderID, cmd.UserID, err)
		return nil, err
	}

	ackEvent := s.acknowledgeOrder(ctx, priced)
	events := composeEvents(priced, ackEvent)

	for _, event := range events {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("event publication failed",
				zap.String("order_id", priced.ID.Value()),
				zap.String("event_type", event.EventType()),
				zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("order placed",
		zap.String("order_id", priced.ID.Value()),
		zap.String("user_id", cmd.UserID),
		zap.String("amount_to_bill", priced.AmountToBill.String()),
		zap.Int("events", len(events)))

	return events, nil
}

// composeEvents assembles the outcome of a successful run: the optional
// acknowledgment event, always an OrderPlaced event, and a
// BillableOrderPlaced event only when there is something to bill.
func composeEvents(po *ordering.PricedOrder, ack *ordering.AcknowledgmentSentEvent) []shared.DomainEvent {
	events := make([]shared.DomainEvent, 0, 3)
	if ack != nil {
		events = append(events, ack)
	}
	events = append(events, ordering.NewOrderPlacedEvent(po))
	if po.AmountToBill.IsPositive() {
		events = append(events, ordering.NewBillableOrderPlacedEvent(po))
	}
	return events
}

func (s *PlaceOrderService) logFailure(orderID, userID string, err error) {
	fields := []zap.Field{
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.Error(err),
	}
	if poErr, ok := err.(ordering.PlaceOrderError); ok {
		fields = append(fields, zap.String("code", poErr.Code()))
	}
	s.logger.Warn("order rejected", fields...)
}
