package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/domain/shared/valueobject"
	"github.com/orderflow/backend/internal/domain/shipping"
)

// capturingPublisher records published events in order
type capturingPublisher struct {
	events []shared.DomainEvent
	err    error
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	return nil
}

func placedEvent(t *testing.T, orderID string) *ordering.OrderPlacedEvent {
	t.Helper()

	validated, err := ordering.NewValidatedOrder(
		ordering.MustNewOrderID(orderID),
		ordering.NewCustomerInfo(
			valueobject.MustNewPersonalName("Taro", "Yamada"),
			valueobject.MustNewEmailAddress("taro@example.com"),
		),
		valueobject.MustNewAddress("1-2-3 Shibuya", "Tokyo", "150-0001"),
		valueobject.MustNewAddress("4-5-6 Umeda", "Osaka", "530-0001"),
		[]ordering.ValidatedOrderLine{
			{
				ID:          ordering.MustNewOrderLineID("line-1"),
				ProductCode: ordering.MustParseProductCode("W1234"),
				Quantity:    mustUnitQuantity(t, 2),
			},
		},
	)
	require.NoError(t, err)

	priced, err := ordering.NewPricedOrder(validated, []ordering.PricedOrderLine{
		{
			ID:          validated.Lines[0].ID,
			ProductCode: validated.Lines[0].ProductCode,
			Quantity:    validated.Lines[0].Quantity,
			LinePrice:   mustPrice(t, 6000),
		},
	})
	require.NoError(t, err)

	return ordering.NewOrderPlacedEvent(priced)
}

func mustUnitQuantity(t *testing.T, value int) ordering.OrderQuantity {
	t.Helper()
	q, err := ordering.NewUnitQuantity(value)
	require.NoError(t, err)
	return q
}

func mustPrice(t *testing.T, amount int64) valueobject.Price {
	t.Helper()
	p, err := valueobject.NewPriceFromInt(amount)
	require.NoError(t, err)
	return p
}

func newHandler(publisher *capturingPublisher) *OrderPlacedHandler {
	service := NewShipOrderService(publisher, zap.NewNop())
	return NewOrderPlacedHandler(service, zap.NewNop())
}

func TestOrderPlacedHandler_ShipsTheOrder(t *testing.T) {
	publisher := &capturingPublisher{}
	handler := newHandler(publisher)

	err := handler.Handle(context.Background(), placedEvent(t, "order-001"))
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	shipped, ok := publisher.events[0].(*shipping.OrderShippedEvent)
	require.True(t, ok)
	assert.Equal(t, "order-001", shipped.OrderID)
	assert.NotEmpty(t, shipped.ShipmentID)
	assert.Regexp(t, `^TRK-[0-9A-F]{8}$`, shipped.TrackingNumber)
	assert.False(t, shipped.ShippedAt.IsZero())
}

func TestOrderPlacedHandler_EventTypes(t *testing.T) {
	handler := newHandler(&capturingPublisher{})
	assert.Equal(t, []string{ordering.EventTypeOrderPlaced}, handler.EventTypes())
}

func TestOrderPlacedHandler_RejectsUnexpectedEventType(t *testing.T) {
	publisher := &capturingPublisher{}
	handler := newHandler(publisher)

	event := placedEvent(t, "order-001")
	billable := &ordering.BillableOrderPlacedEvent{
		BaseDomainEvent: event.BaseDomainEvent,
		OrderID:         event.OrderID,
	}

	err := handler.Handle(context.Background(), billable)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected event type")
	assert.Empty(t, publisher.events)
}

func TestOrderPlacedHandler_PublishFailurePropagates(t *testing.T) {
	publisher := &capturingPublisher{err: errors.New("bus closed")}
	handler := newHandler(publisher)

	err := handler.Handle(context.Background(), placedEvent(t, "order-001"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus closed")
}

func TestOrderPlacedHandler_TranslationDropsBillingDetails(t *testing.T) {
	publisher := &capturingPublisher{}
	service := NewShipOrderService(publisher, zap.NewNop())
	handler := NewOrderPlacedHandler(service, zap.NewNop())

	event := placedEvent(t, "order-002")
	cmd, err := handler.translate(event)
	require.NoError(t, err)

	assert.Equal(t, "order-002", cmd.OrderReference.Value())
	assert.Equal(t, "Taro Yamada", cmd.CustomerName.FullName())
	require.Len(t, cmd.Items, 1)
	assert.Equal(t, "W1234", cmd.Items[0].ProductCode.Value())
	assert.True(t, cmd.Items[0].Quantity.Decimal().Equal(decimal.NewFromInt(2)))
}

func TestShipOrderService_ShipsACommand(t *testing.T) {
	publisher := &capturingPublisher{}
	service := NewShipOrderService(publisher, zap.NewNop())

	cmd := ShipOrderCommand{
		OrderReference:  mustOrderRef(t, "order-003"),
		CustomerName:    valueobject.MustNewPersonalName("Hanako", "Sato"),
		ShippingAddress: valueobject.MustNewAddress("7-8-9 Sakae", "Nagoya", "460-0008"),
		Items: []shipping.ShipmentItem{
			{
				ProductCode: ordering.MustParseProductCode("G123"),
				Quantity:    mustKilogramQuantity(t, "1.5"),
			},
		},
	}

	shipped, err := service.ShipOrder(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)
	assert.Equal(t, shipping.ShipmentStatusShipped, shipped.Status)
	assert.False(t, shipped.TrackingNumber.IsEmpty())
	assert.Len(t, publisher.events, 1)
}

func TestShipOrderService_RejectsEmptyShipment(t *testing.T) {
	publisher := &capturingPublisher{}
	service := NewShipOrderService(publisher, zap.NewNop())

	cmd := ShipOrderCommand{
		OrderReference:  mustOrderRef(t, "order-004"),
		CustomerName:    valueobject.MustNewPersonalName("Hanako", "Sato"),
		ShippingAddress: valueobject.MustNewAddress("7-8-9 Sakae", "Nagoya", "460-0008"),
	}

	_, err := service.ShipOrder(context.Background(), cmd)
	require.Error(t, err)
	assert.Empty(t, publisher.events)
}

func mustOrderRef(t *testing.T, value string) shipping.OrderReference {
	t.Helper()
	ref, err := shipping.NewOrderReference(value)
	require.NoError(t, err)
	return ref
}

func mustKilogramQuantity(t *testing.T, value string) ordering.OrderQuantity {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	q, err := ordering.NewKilogramQuantity(d)
	require.NoError(t, err)
	return q
}
