// Package payment wraps the hosted payment provider. The system only creates
// payment intents; card handling and settlement stay on the provider's side.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

const defaultServiceName = "General Care Service"

// StripeGateway implements ports.PaymentGateway against Stripe.
type StripeGateway struct {
	client *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

// CreateIntent creates a PaymentIntent for the given BDT amount and returns
// the client-side handshake secret. Amounts are converted to minor units
// (poisha) before the call.
func (g *StripeGateway) CreateIntent(ctx context.Context, input ports.PaymentIntentInput) (*ports.PaymentIntent, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	serviceName := input.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.Amount * 100),
		Currency: stripe.String(domain.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())
	params.AddMetadata("service", serviceName)

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &ports.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// mapStripeError translates provider errors into domain errors so stripe-go
// never leaks into the service layer.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return domain.ErrPaymentProvider
		}
		switch stripeErr.Code {
		case stripe.ErrorCodeCardDeclined, stripe.ErrorCodeExpiredCard, stripe.ErrorCodeBalanceInsufficient:
			return fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, stripeErr.Msg)
		}
	}
	return fmt.Errorf("create payment intent: %w", err)
}
