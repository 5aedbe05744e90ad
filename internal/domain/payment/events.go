package payment

import (
	"context"
	"log/slog"

	"CardCheckout/internal/messaging"

	"github.com/shopspring/decimal"
)

const (
	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
	EventRefundCompleted  = "refund.completed"
	EventRefundFailed     = "refund.failed"
)

type Event struct {
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Reason        string          `json:"reason,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// publish is best-effort: a broker outage never changes a payment outcome.
func (m *CardMethod) publish(ctx context.Context, eventType string, e Event) {
	env, err := messaging.NewEnvelope(e.OrderID, eventType, e)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build event", "type", eventType, "error", err)
		return
	}

	if err := m.events.Publish(ctx, env); err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"type", eventType, "order_id", e.OrderID, "error", err)
	}
}
