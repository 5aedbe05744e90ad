package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"CardCheckout/internal/domain/checkout"
	"CardCheckout/internal/domain/order"
	"CardCheckout/internal/messaging"
	"CardCheckout/pkg/metrics"
)

const MethodID = "globalpayments"

const (
	FieldCardNumber = "card-number"
	FieldCardExpiry = "card-expiry"
	FieldCardCVC    = "card-cvc"

	MetaChargeID = "_charge_id"
	MetaAuthCode = "_auth_code"
)

const (
	paidNoteLayout   = "2006-01-02 15:04:05 PM MST"
	refundNoteLayout = "2006-01-02 15:04:05"
)

var cardFields = []checkout.Field{
	{Name: FieldCardNumber, Label: "Card Number", Placeholder: "1234 1234 1234 1234", Required: true},
	{Name: FieldCardExpiry, Label: "Expiry (MM/YY)", Placeholder: "MM / YY", Required: true},
	{Name: FieldCardCVC, Label: "Card Code", Placeholder: "CVC", Required: true},
}

var requiredMessages = map[string]string{
	FieldCardNumber: "Card Number is a required field.",
	FieldCardExpiry: "Card Expiry is a required field.",
	FieldCardCVC:    "Card Code is a required field.",
}

// CardMethod takes card payments and refunds through the Globalpayments gateway.
type CardMethod struct {
	settings Settings
	gateway  Gateway
	orders   order.OrderRepo
	cart     checkout.Cart
	diag     DiagnosticLog
	events   messaging.Publisher
	storeURL string

	now            func() time.Time
	customerSuffix func() int
}

type Option func(*CardMethod)

func WithClock(now func() time.Time) Option {
	return func(m *CardMethod) {
		m.now = now
	}
}

// WithCustomerSuffix replaces the random part of the synthesized customer id.
func WithCustomerSuffix(fn func() int) Option {
	return func(m *CardMethod) {
		m.customerSuffix = fn
	}
}

func NewCardMethod(
	settings Settings,
	gateway Gateway,
	orders order.OrderRepo,
	cart checkout.Cart,
	diag DiagnosticLog,
	events messaging.Publisher,
	storeURL string,
	opts ...Option,
) *CardMethod {
	m := &CardMethod{
		settings:       settings,
		gateway:        gateway,
		orders:         orders,
		cart:           cart,
		diag:           diag,
		events:         events,
		storeURL:       storeURL,
		now:            time.Now,
		customerSuffix: func() int { return rand.IntN(88889) + 11111 },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *CardMethod) ID() string {
	return MethodID
}

func (m *CardMethod) Title() string {
	return m.settings.Title
}

func (m *CardMethod) Description() string {
	return m.settings.Description
}

func (m *CardMethod) IsAvailable() bool {
	return m.settings.Enabled && m.settings.Credentials().Complete()
}

func (m *CardMethod) Fields() []checkout.Field {
	return cardFields
}

func (m *CardMethod) ValidateFields(fields map[string]string) []checkout.FieldError {
	var problems []checkout.FieldError
	for _, f := range cardFields {
		if strings.TrimSpace(fields[f.Name]) == "" {
			problems = append(problems, checkout.FieldError{Field: f.Name, Message: requiredMessages[f.Name]})
		}
	}
	return problems
}

// ProcessPayment makes exactly one charge attempt. The order ends up either paid
// with a note, or unpaid with a failure note and the same message as a notice.
func (m *CardMethod) ProcessPayment(ctx context.Context, s checkout.Submission) (checkout.Outcome, error) {
	o := s.Order

	if problems := m.ValidateFields(s.Fields); len(problems) > 0 {
		return checkout.Outcome{}, &checkout.Error{Kind: checkout.KindValidationFailed, Fields: problems}
	}

	creds := m.settings.Credentials()
	if !m.settings.Enabled || !creds.Complete() {
		metrics.ObservePayment(MethodID, "unavailable")
		return checkout.Outcome{}, &checkout.Error{
			Kind:    checkout.KindConfigurationMissing,
			Message: "card payments are not configured",
		}
	}

	month, year := NormalizeExpiry(s.Fields[FieldCardExpiry])
	req := ChargeRequest{
		Card: Card{
			Number:   NormalizeCardNumber(s.Fields[FieldCardNumber]),
			ExpMonth: month,
			ExpYear:  year,
			CVC:      strings.TrimSpace(s.Fields[FieldCardCVC]),
		},
		Amount:   o.Total,
		Currency: o.Currency,
		Customer: Customer{
			ID:        fmt.Sprintf("%s-%d", o.UserID, m.customerSuffix()),
			FirstName: o.BillingFirstName,
			LastName:  o.BillingLastName,
			Email:     o.BillingEmail,
		},
		CustomData: CustomData{
			Email:       o.BillingEmail,
			OrderNumber: o.Number,
		},
		AllowDuplicates: true,
	}

	m.diag.Record(ctx, "charge.request", req.Redacted())

	res, err := m.gateway.Charge(ctx, creds, req)
	if err != nil {
		return m.chargeFailed(ctx, o, err)
	}

	m.diag.Record(ctx, "charge.completed", res)

	err = m.orders.InTransaction(ctx, func(tx order.TxOrderRepo) error {
		note := fmt.Sprintf("Card payment completed at %s, Charge ID = %s",
			m.now().Format(paidNoteLayout), res.TransactionID)
		if err := tx.AddNote(ctx, o.ID, note); err != nil {
			return err
		}
		if err := tx.SetMeta(ctx, o.ID, MetaChargeID, res.TransactionID); err != nil {
			return err
		}
		if err := tx.SetMeta(ctx, o.ID, MetaAuthCode, res.AuthorizationCode); err != nil {
			return err
		}
		return tx.MarkPaid(ctx, o.ID, res.TransactionID)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Charge succeeded but order was not updated",
			"order_id", o.ID, "transaction_id", res.TransactionID, "error", err)
		m.diag.Record(ctx, "charge.store_failed", map[string]string{
			"order_id":       o.ID,
			"transaction_id": res.TransactionID,
			"error":          err.Error(),
		})
		metrics.ObservePayment(MethodID, "store_failure")
		return checkout.Outcome{}, &checkout.Error{
			Kind:    checkout.KindStoreFailure,
			Message: "payment was taken but the order could not be updated",
			Err:     err,
		}
	}

	if s.SessionID != "" {
		if err := m.cart.Empty(ctx, s.SessionID); err != nil {
			slog.WarnContext(ctx, "Failed to empty cart", "order_id", o.ID, "error", err)
		}
	}

	slog.InfoContext(ctx, "Card payment completed",
		"order_id", o.ID, "transaction_id", res.TransactionID, "amount", o.Total.String())
	metrics.ObservePayment(MethodID, "success")
	m.publish(ctx, EventPaymentCompleted, Event{
		OrderID:       o.ID,
		OrderNumber:   o.Number,
		Method:        MethodID,
		TransactionID: res.TransactionID,
		Amount:        o.Total,
		Currency:      o.Currency,
	})

	return checkout.Outcome{Success: true, Redirect: o.ReceiptURL(m.storeURL)}, nil
}

func (m *CardMethod) chargeFailed(ctx context.Context, o order.Order, cause error) (checkout.Outcome, error) {
	msg := "Payment Failure: " + cause.Error()

	m.diag.Record(ctx, "charge.failed", map[string]string{"order_id": o.ID, "error": cause.Error()})
	slog.WarnContext(ctx, "Card payment failed", "order_id", o.ID, "error", cause)
	m.addNote(ctx, o.ID, msg)
	metrics.ObservePayment(MethodID, "failure")
	m.publish(ctx, EventPaymentFailed, Event{
		OrderID:     o.ID,
		OrderNumber: o.Number,
		Method:      MethodID,
		Amount:      o.Total,
		Currency:    o.Currency,
		Error:       cause.Error(),
	})

	return checkout.Outcome{Notices: []string{msg}}, &checkout.Error{
		Kind:    checkout.KindGatewayRejected,
		Message: msg,
		Err:     cause,
	}
}

// ProcessRefund makes a single refund attempt against the order's recorded charge.
func (m *CardMethod) ProcessRefund(ctx context.Context, cmd checkout.RefundCommand) (checkout.RefundOutcome, error) {
	o := cmd.Order

	if !cmd.Amount.IsPositive() {
		return m.refundRejected(ctx, o, checkout.KindValidationFailed,
			"Refund can't be processed, amount must be greater than zero.", nil)
	}

	meta, err := m.orders.GetMeta(ctx, o.ID, MetaChargeID, MetaAuthCode)
	if err != nil {
		return checkout.RefundOutcome{}, &checkout.Error{
			Kind:    checkout.KindStoreFailure,
			Message: "could not read order payment data",
			Err:     err,
		}
	}

	txnID := meta[MetaChargeID]
	if txnID == "" {
		return m.refundRejected(ctx, o, checkout.KindChargeNotFound,
			"Refund failed: no charge recorded for this order.", nil)
	}

	creds := m.settings.Credentials()
	if !creds.Complete() {
		return m.refundRejected(ctx, o, checkout.KindConfigurationMissing,
			"Refund failed: card payments are not configured.", nil)
	}

	req := RefundRequest{
		TransactionID:     txnID,
		AuthorizationCode: meta[MetaAuthCode],
		Amount:            cmd.Amount,
		Currency:          o.Currency,
	}
	m.diag.Record(ctx, "refund.request", req)

	res, err := m.gateway.Refund(ctx, creds, req)
	if err != nil {
		m.diag.Record(ctx, "refund.failed", map[string]string{"order_id": o.ID, "error": err.Error()})
		m.publish(ctx, EventRefundFailed, Event{
			OrderID:       o.ID,
			OrderNumber:   o.Number,
			Method:        MethodID,
			TransactionID: txnID,
			Amount:        cmd.Amount,
			Currency:      o.Currency,
			Reason:        cmd.Reason,
			Error:         err.Error(),
		})
		return m.refundRejected(ctx, o, checkout.KindGatewayRejected, "Refund failed: "+err.Error(), err)
	}

	m.diag.Record(ctx, "refund.completed", res)

	note := fmt.Sprintf("%s Refunded at %s, Refund Ref ID = %s, Charge ID = %s",
		cmd.Amount.StringFixed(2), m.now().Format(refundNoteLayout), res.TransactionID, txnID)
	if cmd.Reason != "" {
		note += " Reason: " + cmd.Reason
	}
	m.addNote(ctx, o.ID, note)

	slog.InfoContext(ctx, "Refund completed",
		"order_id", o.ID, "refund_id", res.TransactionID, "amount", cmd.Amount.StringFixed(2))
	metrics.ObserveRefund(MethodID, "success")
	m.publish(ctx, EventRefundCompleted, Event{
		OrderID:       o.ID,
		OrderNumber:   o.Number,
		Method:        MethodID,
		TransactionID: res.TransactionID,
		Amount:        cmd.Amount,
		Currency:      o.Currency,
		Reason:        cmd.Reason,
	})

	return checkout.RefundOutcome{Refunded: true, TransactionID: res.TransactionID}, nil
}

func (m *CardMethod) refundRejected(ctx context.Context, o order.Order, kind checkout.Kind, msg string, cause error) (checkout.RefundOutcome, error) {
	slog.WarnContext(ctx, "Refund not processed", "order_id", o.ID, "kind", kind.String(), "reason", msg)
	m.addNote(ctx, o.ID, msg)
	metrics.ObserveRefund(MethodID, "failure")

	return checkout.RefundOutcome{}, &checkout.Error{Kind: kind, Message: msg, Err: cause}
}

// addNote never fails the workflow; a lost note is logged.
func (m *CardMethod) addNote(ctx context.Context, orderID, body string) {
	if err := m.orders.AddNote(ctx, orderID, body); err != nil {
		slog.ErrorContext(ctx, "Failed to add order note", "order_id", orderID, "note", body, "error", err)
	}
}
