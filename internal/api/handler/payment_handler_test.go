package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

type stubPaymentGateway struct {
	lastInput ports.PaymentIntentInput
	intent    *ports.PaymentIntent
	err       error
}

func (g *stubPaymentGateway) CreateIntent(_ context.Context, in ports.PaymentIntentInput) (*ports.PaymentIntent, error) {
	g.lastInput = in
	return g.intent, g.err
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gw := &stubPaymentGateway{intent: &ports.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	h := NewPaymentHandler(gw)

	body := `{"amount":3000,"serviceName":"elderly-care"}`
	_, c, rec := newTestContext(t, http.MethodPost, "/v1/payments/intent", body)

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gw.lastInput.Amount != 3000 || gw.lastInput.ServiceName != "elderly-care" {
		t.Errorf("input not forwarded: %+v", gw.lastInput)
	}

	var got createIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ClientSecret != "pi_1_secret" {
		t.Errorf("expected client secret in response, got %+v", got)
	}
}

func TestPaymentHandler_CreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		gw := &stubPaymentGateway{}
		h := NewPaymentHandler(gw)

		_, c, _ := newTestContext(t, http.MethodPost, "/v1/payments/intent", body)

		err := h.CreateIntent(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
		if gw.lastInput.Amount != 0 {
			t.Errorf("body %s: gateway must not be called", body)
		}
	}
}

func TestPaymentHandler_CreateIntent_ProviderErrorPropagates(t *testing.T) {
	gw := &stubPaymentGateway{err: domain.ErrPaymentProvider}
	h := NewPaymentHandler(gw)

	_, c, _ := newTestContext(t, http.MethodPost, "/v1/payments/intent", `{"amount":100}`)

	if err := h.CreateIntent(c); !errors.Is(err, domain.ErrPaymentProvider) {
		t.Fatalf("expected ErrPaymentProvider to propagate, got %v", err)
	}
}

func TestPaymentOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidAmount, "invalid_amount"},
		{domain.ErrPaymentDeclined, "declined"},
		{domain.ErrPaymentProvider, "provider_error"},
		{errors.New("anything else"), "provider_error"},
	}
	for _, tc := range cases {
		if got := paymentOutcome(tc.err); got != tc.want {
			t.Errorf("paymentOutcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
