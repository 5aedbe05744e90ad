package order

import (
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     string `json:"order_id"`
	Number string `json:"order_number"`
	// Key is the storefront's order key, required by the receipt page.
	Key    string `json:"-"`
	UserID string `json:"user_id"`

	BillingFirstName string `json:"billing_first_name"`
	BillingLastName  string `json:"billing_last_name"`
	BillingEmail     string `json:"billing_email"`

	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`

	Status         Status     `json:"status"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NeedsPayment reports whether checkout must run a payment method for the order.
func (o Order) NeedsPayment() bool {
	return o.Status == StatusPending && o.Total.IsPositive()
}

// ReceiptURL is the storefront's order confirmation location.
func (o Order) ReceiptURL(storeBaseURL string) string {
	q := url.Values{}
	q.Set("key", o.Key)
	return fmt.Sprintf("%s/checkout/order-received/%s?%s", storeBaseURL, url.PathEscape(o.ID), q.Encode())
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

var AvailableStatuses = []Status{StatusPending, StatusPaid}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// Note is an append-only, human-readable audit entry on an order.
type Note struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Details is the read model served to the admin side.
type Details struct {
	Order
	Notes    []Note            `json:"notes"`
	Metadata map[string]string `json:"metadata"`
}
