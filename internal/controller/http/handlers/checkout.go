package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"CardCheckout/internal/domain/checkout"
	"CardCheckout/internal/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "checkout_session"

	sessionCookieMaxAge     = 30 * 24 * 60 * 60
	appointmentCookieMaxAge = int(24 * time.Hour / time.Second)
)

type CheckoutHandler struct {
	pipeline *checkout.Pipeline
	gate     *checkout.AppointmentGate
	sessions checkout.SessionStore
}

func NewCheckoutHandler(p *checkout.Pipeline, gate *checkout.AppointmentGate, sessions checkout.SessionStore) *CheckoutHandler {
	return &CheckoutHandler{pipeline: p, gate: gate, sessions: sessions}
}

type paymentMethodView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Fields      []checkout.Field `json:"fields"`
}

func (h *CheckoutHandler) PaymentMethods(c *gin.Context) {
	methods := h.pipeline.Methods()

	res := make([]paymentMethodView, 0, len(methods))
	for _, m := range methods {
		res = append(res, paymentMethodView{
			ID:          m.ID(),
			Title:       m.Title(),
			Description: m.Description(),
			Fields:      m.Fields(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": res})
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed form body"})
		return
	}

	rc := h.requestContext(c, flatten(c.Request.PostForm))
	outcome, err := h.pipeline.Submit(c.Request.Context(), rc, orderID)

	for _, name := range rc.ExpiredCookies() {
		c.SetCookie(name, "", -1, "/", "", false, true)
	}

	if err != nil {
		h.submitFailed(c, orderID, outcome, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "success", "redirect": outcome.Redirect})
}

func (h *CheckoutHandler) submitFailed(c *gin.Context, orderID string, outcome checkout.Outcome, err error) {
	if errors.Is(err, order.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if errors.Is(err, order.ErrAlreadyPaid) {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	var ce *checkout.Error
	if !errors.As(err, &ce) {
		slog.ErrorContext(c.Request.Context(), "Checkout failed", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"result": "failure", "message": "internal error"})
		return
	}

	switch ce.Kind {
	case checkout.KindValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"result": "failure", "errors": ce.Fields})
	case checkout.KindGatewayRejected:
		c.JSON(http.StatusPaymentRequired, gin.H{"result": "failure", "notices": outcome.Notices})
	case checkout.KindConfigurationMissing:
		c.JSON(http.StatusServiceUnavailable, gin.H{"result": "failure", "message": ce.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "Checkout failed", "order_id", orderID, "kind", ce.Kind.String(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"result": "failure", "message": ce.Error()})
	}
}

func (h *CheckoutHandler) SaveAppointmentDate(c *gin.Context) {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(SessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
	}

	date, err := h.gate.Save(c.Request.Context(), sid, c.PostForm(checkout.AppointmentDateKey))
	if err != nil {
		var ce *checkout.Error
		if errors.As(err, &ce) && ce.Kind == checkout.KindValidationFailed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"result": "failure", "errors": ce.Fields})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to save appointment date", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"result": "failure", "message": "could not save appointment date"})
		return
	}

	c.SetCookie(checkout.AppointmentDateKey, date, appointmentCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"result": "success", checkout.AppointmentDateKey: date})
}

func (h *CheckoutHandler) AppointmentDate(c *gin.Context) {
	rc := h.requestContext(c, flatten(c.Request.URL.Query()))

	date, ok := h.gate.Current(rc)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no appointment date selected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{checkout.AppointmentDateKey: date})
}

// requestContext resolves checkout values from the session, then cookies, then the submitted fields.
func (h *CheckoutHandler) requestContext(c *gin.Context, fields map[string]string) *checkout.RequestContext {
	sid, _ := c.Cookie(SessionCookie)

	cookies := map[string]string{}
	if v, err := c.Cookie(checkout.AppointmentDateKey); err == nil {
		cookies[checkout.AppointmentDateKey] = v
	}

	return checkout.NewRequestContext(sid, fields,
		checkout.SessionSource(c.Request.Context(), h.sessions, sid),
		checkout.MapSource(checkout.SourceCookie, cookies),
		checkout.MapSource(checkout.SourceRequest, fields),
	)
}

func flatten(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields
}
