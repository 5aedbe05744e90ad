package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"CardCheckout/internal/domain/order"
)

const (
	AppointmentDateKey = "appointment_date"

	// AppointmentDateLayout is the canonical stored form.
	AppointmentDateLayout = "2006-01-02"

	msgAppointmentRequired = "Appointment Date is a required field. Go to the previous step and select a date."
	msgAppointmentInvalid  = "Appointment Date is not a valid date. Go to the previous step and select a date."
)

var appointmentInputLayouts = []string{
	AppointmentDateLayout,
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// NormalizeAppointmentDate converts any accepted input form to AppointmentDateLayout.
func NormalizeAppointmentDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range appointmentInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(AppointmentDateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAppointmentDate, raw)
}

// AppointmentGate makes a date required on every checkout and moves it
// from the shopper's session onto the order.
type AppointmentGate struct {
	orders   order.OrderRepo
	sessions SessionStore
}

func NewAppointmentGate(orders order.OrderRepo, sessions SessionStore) *AppointmentGate {
	return &AppointmentGate{orders: orders, sessions: sessions}
}

func (g *AppointmentGate) Validate(_ context.Context, rc *RequestContext) []FieldError {
	raw, _, ok := rc.Resolve(AppointmentDateKey)
	if !ok {
		return []FieldError{{Field: AppointmentDateKey, Message: msgAppointmentRequired}}
	}
	if _, err := NormalizeAppointmentDate(raw); err != nil {
		return []FieldError{{Field: AppointmentDateKey, Message: msgAppointmentInvalid}}
	}
	return nil
}

func (g *AppointmentGate) OnOrderPlaced(ctx context.Context, o order.Order, rc *RequestContext) error {
	date, ok := g.Current(rc)
	if !ok {
		return fmt.Errorf("%w: nothing to store for order %s", ErrInvalidAppointmentDate, o.ID)
	}

	if err := g.orders.SetMeta(ctx, o.ID, AppointmentDateKey, date); err != nil {
		return fmt.Errorf("store appointment date: %w", err)
	}

	slog.InfoContext(ctx, "Appointment date stored", "order_id", o.ID, "appointment_date", date)
	return nil
}

// OnOrderPaid drops the shopper's copies of the date. A failed charge keeps them for the retry.
func (g *AppointmentGate) OnOrderPaid(ctx context.Context, o order.Order, rc *RequestContext) {
	if sid := rc.SessionID(); sid != "" {
		if err := g.sessions.Delete(ctx, sid, AppointmentDateKey); err != nil {
			slog.WarnContext(ctx, "Failed to clear appointment date from session",
				"order_id", o.ID, "error", err)
		}
	}
	rc.ExpireCookie(AppointmentDateKey)
}

// Current returns the normalized date the request resolves to, if any.
func (g *AppointmentGate) Current(rc *RequestContext) (string, bool) {
	raw, _, ok := rc.Resolve(AppointmentDateKey)
	if !ok {
		return "", false
	}
	date, err := NormalizeAppointmentDate(raw)
	if err != nil {
		return "", false
	}
	return date, true
}

// Save keeps the shopper's choice in the session until the order is placed.
func (g *AppointmentGate) Save(ctx context.Context, sessionID, raw string) (string, error) {
	msg := msgAppointmentInvalid
	if strings.TrimSpace(raw) == "" {
		msg = msgAppointmentRequired
	}

	date, err := NormalizeAppointmentDate(raw)
	if err != nil {
		return "", &Error{
			Kind:   KindValidationFailed,
			Fields: []FieldError{{Field: AppointmentDateKey, Message: msg}},
			Err:    err,
		}
	}
	if err := g.sessions.Set(ctx, sessionID, AppointmentDateKey, date); err != nil {
		return "", fmt.Errorf("save appointment date: %w", err)
	}
	return date, nil
}
