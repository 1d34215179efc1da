package collaborator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appordering "github.com/orderflow/backend/internal/application/ordering"
	"github.com/orderflow/backend/internal/domain/ordering"
)

// HTMLLetterRenderer implements LetterRenderer with a plain HTML
// acknowledgment letter
type HTMLLetterRenderer struct{}

// NewHTMLLetterRenderer creates a new HTMLLetterRenderer
func NewHTMLLetterRenderer() *HTMLLetterRenderer {
	return &HTMLLetterRenderer{}
}

// Render builds the acknowledgment letter for a priced order
func (r *HTMLLetterRenderer) Render(order *ordering.PricedOrder) appordering.Letter {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Thank you for your order, %s</h1>", order.CustomerInfo.Name().FullName())
	fmt.Fprintf(&b, "<p>Order %s has been received.</p>", order.ID.Value())
	b.WriteString("<ul>")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "<li>%s x %s: %s</li>",
			line.ProductCode.Value(), line.Quantity.Decimal().String(), line.LinePrice.String())
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Total: %s</p>", order.AmountToBill.String())
	return appordering.Letter{HTML: b.String()}
}

// LoggingAcknowledgmentSender implements AcknowledgmentSender by
// logging the letter instead of mailing it. Every send is reported as
// delivered.
type LoggingAcknowledgmentSender struct {
	logger *zap.Logger
}

// NewLoggingAcknowledgmentSender creates a new LoggingAcknowledgmentSender
func NewLoggingAcknowledgmentSender(logger *zap.Logger) *LoggingAcknowledgmentSender {
	return &LoggingAcknowledgmentSender{logger: logger}
}

// Send logs the acknowledgment and confirms delivery
func (s *LoggingAcknowledgmentSender) Send(_ context.Context, ack appordering.Acknowledgment) (appordering.SendOutcome, error) {
	s.logger.Info("acknowledgment sent",
		zap.String("email", ack.EmailAddress.Value()),
		zap.Int("letter_bytes", len(ack.Letter.HTML)))
	return appordering.SendOutcomeSent, nil
}
