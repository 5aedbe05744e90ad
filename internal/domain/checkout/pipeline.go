package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"CardCheckout/internal/domain/order"

	"github.com/shopspring/decimal"
)

const PaymentMethodField = "payment_method"

const msgInvalidPaymentMethod = "Invalid payment method."

// Pipeline runs a checkout submission through the gates and the selected payment method.
type Pipeline struct {
	methods  *Registry
	orders   order.OrderRepo
	gates    []Gate
	storeURL string
}

func NewPipeline(methods *Registry, orders order.OrderRepo, storeURL string, gates ...Gate) *Pipeline {
	return &Pipeline{
		methods:  methods,
		orders:   orders,
		gates:    gates,
		storeURL: storeURL,
	}
}

func (p *Pipeline) Methods() []PaymentMethod {
	return p.methods.Available()
}

// Submit validates everything first; nothing is written unless all checks pass.
func (p *Pipeline) Submit(ctx context.Context, rc *RequestContext, orderID string) (Outcome, error) {
	o, err := p.orders.GetOrder(ctx, orderID)
	if err != nil {
		return Outcome{}, fmt.Errorf("get order: %w", err)
	}
	if o.Status == order.StatusPaid {
		return Outcome{}, order.ErrAlreadyPaid
	}

	var (
		method   PaymentMethod
		problems []FieldError
	)

	if o.NeedsPayment() {
		id := rc.Field(PaymentMethodField)
		m, ok := p.methods.Get(id)
		switch {
		case !ok:
			problems = append(problems, FieldError{Field: PaymentMethodField, Message: msgInvalidPaymentMethod})
		case !m.IsAvailable():
			return Outcome{}, &Error{
				Kind:    KindConfigurationMissing,
				Message: fmt.Sprintf("payment method %s is not available", id),
			}
		default:
			method = m
			problems = append(problems, m.ValidateFields(rc.Fields())...)
		}
	}

	for _, g := range p.gates {
		problems = append(problems, g.Validate(ctx, rc)...)
	}

	if len(problems) > 0 {
		slog.InfoContext(ctx, "Checkout rejected by validation", "order_id", o.ID, "errors", len(problems))
		return Outcome{}, &Error{Kind: KindValidationFailed, Fields: problems}
	}

	methodID := ""
	if method != nil {
		methodID = method.ID()
	}
	if err := p.orders.SetPaymentMethod(ctx, o.ID, methodID); err != nil {
		return Outcome{}, &Error{Kind: KindStoreFailure, Message: "could not update order", Err: err}
	}
	o.PaymentMethod = methodID

	for _, g := range p.gates {
		if err := g.OnOrderPlaced(ctx, o, rc); err != nil {
			return Outcome{}, &Error{Kind: KindStoreFailure, Message: "could not update order", Err: err}
		}
	}

	if method == nil {
		if err := p.orders.MarkPaid(ctx, o.ID, ""); err != nil {
			return Outcome{}, fmt.Errorf("complete free order: %w", err)
		}
		slog.InfoContext(ctx, "Order completed without payment", "order_id", o.ID)
		p.paid(ctx, o, rc)
		return Outcome{Success: true, Redirect: o.ReceiptURL(p.storeURL)}, nil
	}

	outcome, err := method.ProcessPayment(ctx, Submission{
		Order:     o,
		Fields:    rc.Fields(),
		SessionID: rc.SessionID(),
	})
	if err != nil {
		return outcome, err
	}
	if outcome.Success {
		p.paid(ctx, o, rc)
	}
	return outcome, nil
}

func (p *Pipeline) paid(ctx context.Context, o order.Order, rc *RequestContext) {
	for _, g := range p.gates {
		g.OnOrderPaid(ctx, o, rc)
	}
}

// Refund dispatches to the method that took the order's payment.
func (p *Pipeline) Refund(ctx context.Context, orderID string, amount decimal.Decimal, reason string) (RefundOutcome, error) {
	o, err := p.orders.GetOrder(ctx, orderID)
	if err != nil {
		return RefundOutcome{}, fmt.Errorf("get order: %w", err)
	}

	m, ok := p.methods.Get(o.PaymentMethod)
	if !ok {
		return RefundOutcome{}, &Error{
			Kind:    KindConfigurationMissing,
			Message: fmt.Sprintf("order %s was not paid with a refundable method", o.ID),
			Err:     ErrMethodNotRegistered,
		}
	}

	return m.ProcessRefund(ctx, RefundCommand{Order: o, Amount: amount, Reason: reason})
}
