package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/care-io/booking-system/internal/core/domain"
)

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingField, http.StatusBadRequest},
		{domain.ErrInvalidDuration, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidImageURL, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidService, http.StatusUnprocessableEntity},
		{domain.ErrForbiddenTransition, http.StatusUnprocessableEntity},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrContactTaken, http.StatusConflict},
		{domain.ErrNIDTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrPaymentDeclined, http.StatusPaymentRequired},
		{domain.ErrPaymentProvider, http.StatusBadGateway},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	e := echo.New()
	log := zerolog.Nop()

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, _ := resolveError(tc.err, log, c)
		if code != tc.code {
			t.Errorf("resolveError(%v) = %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	wrapped := fmt.Errorf("%w: division", domain.ErrMissingField)
	code, msg := resolveError(wrapped, zerolog.Nop(), c)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped ErrMissingField, got %d", code)
	}
	if msg != wrapped.Error() {
		t.Errorf("expected wrapped message to surface, got %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "missing token"), zerolog.Nop(), c)
	if code != http.StatusUnauthorized || msg != "missing token" {
		t.Fatalf("expected (401, missing token), got (%d, %q)", code, msg)
	}
}

func TestResolveError_InternalMessageIsGeneric(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(errors.New("dial tcp 10.0.0.1: connection refused"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Errorf("internal details must not leak to the client, got %q", msg)
	}
}

func TestHTTPErrorHandler_RendersEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(domain.ErrBookingNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if body.Error != "booking not found" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}
