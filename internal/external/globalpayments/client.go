package globalpayments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"CardCheckout/internal/domain/payment"
	"CardCheckout/pkg/metrics"

	"github.com/google/go-querystring/query"
)

const approvedCode = "00"

type Client struct {
	HTTP *http.Client
}

func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{HTTP: httpClient}
}

type chargeForm struct {
	CardNumber      string `url:"card_number"`
	ExpMonth        string `url:"exp_month"`
	ExpYear         string `url:"exp_year"`
	CVN             string `url:"cvn"`
	Amount          string `url:"amount"`
	Currency        string `url:"currency"`
	CustomerID      string `url:"customer_id"`
	FirstName       string `url:"first_name,omitempty"`
	LastName        string `url:"last_name,omitempty"`
	Email           string `url:"email,omitempty"`
	CustomEmail     string `url:"custom[email],omitempty"`
	CustomOrderID   string `url:"custom[order_id],omitempty"`
	AllowDuplicates bool   `url:"allow_duplicates"`
}

type refundForm struct {
	AuthorizationCode string `url:"authorization_code,omitempty"`
	Amount            string `url:"amount"`
	Currency          string `url:"currency"`
}

type transactionResp struct {
	TransactionID     string `json:"transaction_id"`
	AuthorizationCode string `json:"authorization_code"`
	ResponseCode      string `json:"response_code"`
	ResponseText      string `json:"response_text"`
}

func (c *Client) Charge(ctx context.Context, creds payment.Credentials, req payment.ChargeRequest) (payment.ChargeResult, error) {
	form := chargeForm{
		CardNumber:      req.Card.Number,
		ExpMonth:        req.Card.ExpMonth,
		ExpYear:         req.Card.ExpYear,
		CVN:             req.Card.CVC,
		Amount:          req.Amount.StringFixed(2),
		Currency:        req.Currency,
		CustomerID:      req.Customer.ID,
		FirstName:       req.Customer.FirstName,
		LastName:        req.Customer.LastName,
		Email:           req.Customer.Email,
		CustomEmail:     req.CustomData.Email,
		CustomOrderID:   req.CustomData.OrderNumber,
		AllowDuplicates: req.AllowDuplicates,
	}

	out, err := c.post(ctx, "charge", creds, "/v1/charges", form)
	if err != nil {
		return payment.ChargeResult{}, err
	}

	return payment.ChargeResult{
		TransactionID:     out.TransactionID,
		AuthorizationCode: out.AuthorizationCode,
	}, nil
}

func (c *Client) Refund(ctx context.Context, creds payment.Credentials, req payment.RefundRequest) (payment.RefundResult, error) {
	form := refundForm{
		AuthorizationCode: req.AuthorizationCode,
		Amount:            req.Amount.StringFixed(2),
		Currency:          req.Currency,
	}

	path := "/v1/transactions/" + url.PathEscape(req.TransactionID) + "/refund"
	out, err := c.post(ctx, "refund", creds, path, form)
	if err != nil {
		return payment.RefundResult{}, err
	}

	return payment.RefundResult{TransactionID: out.TransactionID}, nil
}

func (c *Client) post(ctx context.Context, op string, creds payment.Credentials, path string, form any) (transactionResp, error) {
	values, err := query.Values(form)
	if err != nil {
		return transactionResp{}, fmt.Errorf("encode %s form: %w", op, err)
	}

	endpoint := strings.TrimRight(creds.Endpoint, "/") + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return transactionResp{}, fmt.Errorf("build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Api-Key", creds.SecretKey)
	httpReq.Header.Set("X-Public-Key", creds.PublicKey)

	start := time.Now()
	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(op, "error").Observe(time.Since(start).Seconds())
		return transactionResp{}, &GatewayError{
			Message: "Unable to reach the payment gateway.",
			kind:    ErrUnavailable,
			cause:   err,
		}
	}
	defer resp.Body.Close()
	metrics.GatewayRequestDuration.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, _ := io.ReadAll(resp.Body)

	var out transactionResp
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode/100 != 2 {
		return transactionResp{}, statusError(resp, out)
	}
	if decodeErr != nil {
		return transactionResp{}, &GatewayError{
			Message: "The payment gateway sent an unreadable response.",
			kind:    ErrUnavailable,
			cause:   fmt.Errorf("decode %s response: %w", op, decodeErr),
		}
	}
	if out.ResponseCode != approvedCode {
		msg := out.ResponseText
		if msg == "" {
			msg = fmt.Sprintf("Declined with code %s.", out.ResponseCode)
		}
		return transactionResp{}, &GatewayError{Code: out.ResponseCode, Message: msg, kind: ErrDeclined}
	}

	return out, nil
}

func statusError(resp *http.Response, body transactionResp) *GatewayError {
	msg := body.ResponseText
	if msg == "" {
		msg = fmt.Sprintf("provider %s", resp.Status)
	}

	kind := ErrInvalidRequest
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		kind = ErrUnauthorized
	case resp.StatusCode >= 500:
		kind = ErrUnavailable
	}

	return &GatewayError{Code: body.ResponseCode, Message: msg, kind: kind}
}
