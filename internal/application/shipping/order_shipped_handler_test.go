package shipping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderflow/backend/internal/domain/shipping"
)

func TestOrderShippedHandler_EventTypes(t *testing.T) {
	h := NewOrderShippedHandler(zap.NewNop())
	assert.Equal(t, []string{shipping.EventTypeOrderShipped}, h.EventTypes())
}

func TestOrderShippedHandler_Handle(t *testing.T) {
	publisher := &capturingPublisher{}
	handler := newHandler(publisher)

	require.NoError(t, handler.Handle(context.Background(), placedEvent(t, "order-007")))
	require.Len(t, publisher.events, 1)

	h := NewOrderShippedHandler(zap.NewNop())
	require.NoError(t, h.Handle(context.Background(), publisher.events[0]))
}

func TestOrderShippedHandler_RejectsUnexpectedEventType(t *testing.T) {
	h := NewOrderShippedHandler(zap.NewNop())

	err := h.Handle(context.Background(), placedEvent(t, "order-008"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected event type")
}
