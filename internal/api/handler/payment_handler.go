package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/care-io/booking-system/internal/api/metrics"
	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// PaymentHandler creates hosted payment intents.
type PaymentHandler struct {
	gateway ports.PaymentGateway
}

func NewPaymentHandler(gateway ports.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// CreateIntent handles POST /v1/payments/intent.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Amount in BDT and service name"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("invalid_amount").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.gateway.CreateIntent(c.Request().Context(), ports.PaymentIntentInput{
		Amount:      req.Amount,
		ServiceName: req.ServiceName,
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues(paymentOutcome(err)).Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: intent.ClientSecret})
}

func paymentOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrPaymentDeclined):
		return "declined"
	default:
		return "provider_error"
	}
}
