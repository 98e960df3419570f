package payment

import (
	"fmt"
	"math"

	"shootflow/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// CheckoutProvider builds an externally-hosted checkout page for a batch
// total. Used when the authority supplies no checkout location of its own.
type CheckoutProvider interface {
	CreateCheckout(batchID string, totalDue float64) (string, error)
}

// StripeCheckoutProvider implements CheckoutProvider with Stripe Checkout
// Sessions. Webhook-driven completion handling is the authority's business,
// not ours; we only mint the page.
type StripeCheckoutProvider struct{}

// NewStripeCheckoutProvider returns a provider, or nil when no Stripe key is
// configured.
func NewStripeCheckoutProvider() *StripeCheckoutProvider {
	if config.AppConfig.StripeKey == "" {
		return nil
	}
	stripe.Key = config.AppConfig.StripeKey
	return &StripeCheckoutProvider{}
}

// CreateCheckout mints a checkout session for the amount due and returns its
// hosted URL.
func (p *StripeCheckoutProvider) CreateCheckout(batchID string, totalDue float64) (string, error) {
	cents := int64(math.Round(totalDue * 100))
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Shoot balance payment"),
					},
					UnitAmount: stripe.Int64(cents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(batchID),
	}
	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}
