package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

// Intent is the part of a processor payment intent the client needs.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// StripeGateway creates card payment intents through the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return newStripeGateway(secretKey, nil)
}

// newStripeGateway uses backends instead of the default Stripe endpoints when
// not nil.
func newStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	if secretKey == "" {
		return &StripeGateway{}
	}
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// CreatePaymentIntent creates an intent for amount minor units of currency.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if g.api == nil {
		return nil, ErrGatewayNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
