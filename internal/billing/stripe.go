package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeProvider implements Provider using Stripe Checkout.
type StripeProvider struct {
	config StripeConfig
}

// NewStripeProvider creates a new Stripe billing provider and configures the
// package-level Stripe client with the secret key.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 2
	}

	stripe.Key = config.APIKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(int64(config.MaxRetries)),
	}))

	return &StripeProvider{config: config}, nil
}

// CreateCheckoutSession creates a Stripe Checkout session in one-time
// payment mode.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.ImageURL})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(params.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmountMinor),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	checkoutParams := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
	}
	checkoutParams.Context = ctx
	for k, v := range params.Metadata {
		checkoutParams.AddMetadata(k, v)
	}

	session, err := checkoutsession.New(checkoutParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreateFailed, err)
	}

	return &CheckoutSession{
		ID:        session.ID,
		URL:       session.URL,
		CreatedAt: time.Unix(session.Created, 0),
	}, nil
}
