package ordering

import (
	"context"

	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/ordering"
)

// acknowledgeOrder renders and sends the acknowledgment mail. Delivery
// is best effort: a failed or unconfirmed send never fails the order,
// it only means no AcknowledgmentSent event is emitted.
func (s *PlaceOrderService) acknowledgeOrder(ctx context.Context, order *ordering.PricedOrder) *ordering.AcknowledgmentSentEvent {
	ack := Acknowledgment{
		EmailAddress: order.CustomerInfo.Email(),
		Letter:       s.renderer.Render(order),
	}

	outcome, err := s.sender.Send(ctx, ack)
	if err != nil {
		s.logger.Warn("acknowledgment delivery failed",
			zap.String("order_id", order.ID.Value()),
			zap.Error(err))
		return nil
	}
	if outcome != SendOutcomeSent {
		s.logger.Info("acknowledgment not sent",
			zap.String("order_id", order.ID.Value()))
		return nil
	}

	return ordering.NewAcknowledgmentSentEvent(order)
}
