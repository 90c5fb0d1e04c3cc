package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentGateway creates payment intents with the payment provider.
type IntentGateway interface {
	CreateIntent(amountCents int64, currency, bookingID string) (clientSecret string, err error)
}

// StripeGateway is the production gateway backed by the Stripe API. The
// package-level stripe.Key is set once at startup.
type StripeGateway struct{}

// CreateIntent creates a card payment intent and returns its client secret.
func (StripeGateway) CreateIntent(amountCents int64, currency, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.AddMetadata("bookingId", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
