package checkout

import (
	"context"

	"CardCheckout/internal/domain/order"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source method.go -destination mock_method.go -package checkout

// PaymentMethod is implemented by every payment option the checkout can offer.
type PaymentMethod interface {
	ID() string
	Title() string
	Description() string
	// IsAvailable reports whether the method may be listed and selected at all.
	IsAvailable() bool
	Fields() []Field
	// ValidateFields runs before anything is written for the order.
	ValidateFields(fields map[string]string) []FieldError
	ProcessPayment(ctx context.Context, s Submission) (Outcome, error)
	ProcessRefund(ctx context.Context, cmd RefundCommand) (RefundOutcome, error)
}

// Gate is a checkout-wide hook that runs against every submission, whatever the payment method.
type Gate interface {
	Validate(ctx context.Context, rc *RequestContext) []FieldError
	// OnOrderPlaced runs once all validation passed and before payment is taken.
	OnOrderPlaced(ctx context.Context, o order.Order, rc *RequestContext) error
	// OnOrderPaid runs only after the order was paid.
	OnOrderPaid(ctx context.Context, o order.Order, rc *RequestContext)
}

// Field describes one input a payment method needs from the shopper.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
}

type Submission struct {
	Order     order.Order
	Fields    map[string]string
	SessionID string
}

type Outcome struct {
	Success  bool     `json:"-"`
	Redirect string   `json:"redirect,omitempty"`
	Notices  []string `json:"notices,omitempty"`
}

type RefundCommand struct {
	Order  order.Order
	Amount decimal.Decimal
	Reason string
}

type RefundOutcome struct {
	Refunded      bool   `json:"refunded"`
	TransactionID string `json:"refund_id,omitempty"`
}

// Registry holds payment methods in registration order.
type Registry struct {
	methods []PaymentMethod
	byID    map[string]PaymentMethod
}

func NewRegistry(methods ...PaymentMethod) *Registry {
	r := &Registry{byID: make(map[string]PaymentMethod, len(methods))}
	for _, m := range methods {
		if _, dup := r.byID[m.ID()]; dup {
			continue
		}
		r.methods = append(r.methods, m)
		r.byID[m.ID()] = m
	}
	return r
}

func (r *Registry) Get(id string) (PaymentMethod, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// Available returns the methods that can currently be offered to shoppers.
func (r *Registry) Available() []PaymentMethod {
	available := make([]PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		if m.IsAvailable() {
			available = append(available, m)
		}
	}
	return available
}
