package globalpayments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CardCheckout/internal/domain/payment"

	"github.com/h2non/gock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sandboxURL = "https://sandbox.example"

var sandboxCreds = payment.Credentials{
	Mode:      payment.ModeSandbox,
	PublicKey: "pk_test",
	SecretKey: "sk_test",
	Endpoint:  sandboxURL,
}

func chargeRequest() payment.ChargeRequest {
	return payment.ChargeRequest{
		Card:     payment.Card{Number: "4111111111111111", ExpMonth: "12", ExpYear: "2025", CVC: "123"},
		Amount:   decimal.RequireFromString("49.99"),
		Currency: "USD",
		Customer: payment.Customer{ID: "42-12345", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		CustomData: payment.CustomData{
			Email:       "ada@example.com",
			OrderNumber: "1001",
		},
		AllowDuplicates: true,
	}
}

func TestClient_Charge_Form(t *testing.T) {
	t.Parallel()

	// given
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "sk_test", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "pk_test", r.Header.Get("X-Public-Key"))
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "4111111111111111", r.PostForm.Get("card_number"))
		assert.Equal(t, "12", r.PostForm.Get("exp_month"))
		assert.Equal(t, "2025", r.PostForm.Get("exp_year"))
		assert.Equal(t, "123", r.PostForm.Get("cvn"))
		assert.Equal(t, "49.99", r.PostForm.Get("amount"))
		assert.Equal(t, "USD", r.PostForm.Get("currency"))
		assert.Equal(t, "42-12345", r.PostForm.Get("customer_id"))
		assert.Equal(t, "ada@example.com", r.PostForm.Get("custom[email]"))
		assert.Equal(t, "1001", r.PostForm.Get("custom[order_id]"))
		assert.Equal(t, "true", r.PostForm.Get("allow_duplicates"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transaction_id":"T-1","authorization_code":"A-9","response_code":"00","response_text":"APPROVAL"}`))
	}))
	defer srv.Close()

	creds := sandboxCreds
	creds.Endpoint = srv.URL + "/"
	client := New(srv.Client())

	// when
	res, err := client.Charge(context.Background(), creds, chargeRequest())

	// then
	require.NoError(t, err)
	assert.Equal(t, payment.ChargeResult{TransactionID: "T-1", AuthorizationCode: "A-9"}, res)
}

func TestClient_Refund_Form(t *testing.T) {
	t.Parallel()

	// given
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transactions/T-1/refund", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "A-9", r.PostForm.Get("authorization_code"))
		assert.Equal(t, "10.00", r.PostForm.Get("amount"))
		assert.Equal(t, "USD", r.PostForm.Get("currency"))

		_, _ = w.Write([]byte(`{"transaction_id":"R-7","response_code":"00","response_text":"APPROVAL"}`))
	}))
	defer srv.Close()

	creds := sandboxCreds
	creds.Endpoint = srv.URL
	client := New(srv.Client())

	// when
	res, err := client.Refund(context.Background(), creds, payment.RefundRequest{
		TransactionID:     "T-1",
		AuthorizationCode: "A-9",
		Amount:            decimal.NewFromInt(10),
		Currency:          "USD",
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "R-7", res.TransactionID)
}

func TestClient_Charge_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func()
		expectedErr error
		expectedMsg string
	}{
		{
			name: "declined",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					MatchHeader("X-Api-Key", "sk_test").
					Reply(200).
					JSON(map[string]string{"response_code": "05", "response_text": "DECLINE"})
			},
			expectedErr: ErrDeclined,
			expectedMsg: "DECLINE",
		},
		{
			name: "declined without text",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(200).
					JSON(map[string]string{"response_code": "51"})
			},
			expectedErr: ErrDeclined,
			expectedMsg: "Declined with code 51.",
		},
		{
			name: "bad credentials",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(401).
					JSON(map[string]string{"response_text": "Authentication error. Please double check your service configuration."})
			},
			expectedErr: ErrUnauthorized,
			expectedMsg: "Authentication error. Please double check your service configuration.",
		},
		{
			name: "invalid request",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(400).
					JSON(map[string]string{"response_text": "Invalid card expiration date."})
			},
			expectedErr: ErrInvalidRequest,
			expectedMsg: "Invalid card expiration date.",
		},
		{
			name: "server error",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(503).
					BodyString("upstream down")
			},
			expectedErr: ErrUnavailable,
			expectedMsg: "provider 503 Service Unavailable",
		},
		{
			name: "unreadable response",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(200).
					BodyString("<html>")
			},
			expectedErr: ErrUnavailable,
			expectedMsg: "The payment gateway sent an unreadable response.",
		},
		{
			name: "timeout",
			mock: func() {
				gock.New(sandboxURL).
					Post("/v1/charges").
					Reply(200).
					Delay(2 * time.Second).
					JSON(map[string]string{"response_code": "00"})
			},
			expectedErr: ErrUnavailable,
			expectedMsg: "Unable to reach the payment gateway.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer gock.Off()
			tc.mock()

			client := New(&http.Client{Timeout: 500 * time.Millisecond})

			_, err := client.Charge(context.Background(), sandboxCreds, chargeRequest())

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.EqualError(t, err, tc.expectedMsg)

			var gwErr *GatewayError
			assert.True(t, errors.As(err, &gwErr))
			assert.True(t, gock.IsDone())
		})
	}
}
