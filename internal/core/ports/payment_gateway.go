package ports

import "context"

// PaymentIntentInput carries a hosted-payment handshake request. Amount is in
// whole currency units (BDT); the gateway converts to minor units.
type PaymentIntentInput struct {
	Amount      int64
	ServiceName string
}

// PaymentIntent is the opaque client-side handshake token returned by the
// hosted payment provider. The system never parses card data or manages
// settlement.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates payment intents against the hosted provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, input PaymentIntentInput) (*PaymentIntent, error)
}
