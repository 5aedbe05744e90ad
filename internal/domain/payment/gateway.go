package payment

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source gateway.go -destination mock_gateway.go -package payment

// Gateway performs charges and refunds against the card processor.
type Gateway interface {
	Charge(ctx context.Context, creds Credentials, req ChargeRequest) (ChargeResult, error)
	Refund(ctx context.Context, creds Credentials, req RefundRequest) (RefundResult, error)
}

// DiagnosticLog is an append-only trace of gateway traffic. Record never fails or blocks.
type DiagnosticLog interface {
	Record(ctx context.Context, event string, data any)
}

type Card struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc,omitempty"`
}

// Masked keeps only the last four digits of the number.
func (c Card) Masked() string {
	if len(c.Number) <= 4 {
		return strings.Repeat("*", len(c.Number))
	}
	return strings.Repeat("*", len(c.Number)-4) + c.Number[len(c.Number)-4:]
}

type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CustomData travels with the charge for reconciliation on the processor's side.
type CustomData struct {
	Email       string `json:"email"`
	OrderNumber string `json:"order_number"`
}

type ChargeRequest struct {
	Card            Card            `json:"card"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Customer        Customer        `json:"customer"`
	CustomData      CustomData      `json:"custom_data"`
	AllowDuplicates bool            `json:"allow_duplicates"`
}

// Redacted is safe to write to logs: the number is masked and the CVC dropped.
func (r ChargeRequest) Redacted() ChargeRequest {
	r.Card.Number = r.Card.Masked()
	r.Card.CVC = ""
	return r
}

type ChargeResult struct {
	TransactionID     string `json:"transaction_id"`
	AuthorizationCode string `json:"authorization_code"`
}

type RefundRequest struct {
	TransactionID     string          `json:"transaction_id"`
	AuthorizationCode string          `json:"authorization_code"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
}

type RefundResult struct {
	TransactionID string `json:"transaction_id"`
}
