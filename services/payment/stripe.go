package payment

import (
	"context"
	"fmt"
	"strings"

	"expertbridge/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway implements Gateway over Stripe Checkout. The reference is
// carried on the session as ClientReferenceID and copied into the payment
// intent metadata so verification can find it again.
type StripeGateway struct{}

// NewGateway returns the Stripe-backed gateway when a key is configured and
// the simulated gateway otherwise. The stripe key itself is set globally by
// the process entry point.
func NewGateway(stripeKey string) Gateway {
	if stripeKey == "" {
		utils.GetLogger().Warn("Stripe key not configured, payments will be simulated")
		return &SimulatedGateway{}
	}
	return &StripeGateway{}
}

func (g *StripeGateway) InitializeTransaction(ctx context.Context, email string, amount float64, currency, reference, callbackURL string, metadata map[string]string) (*InitializeResult, error) {
	meta := map[string]string{"reference": reference}
	for k, v := range metadata {
		meta[k] = v
	}

	successURL := callbackURL
	if !strings.Contains(successURL, "?") {
		successURL += "?reference=" + reference
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     stripe.String(email),
		ClientReferenceID: stripe.String(reference),
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(callbackURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(currency)),
					UnitAmount: stripe.Int64(int64(amount * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Featured placement"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: meta,
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session failed: %w", err)
	}

	return &InitializeResult{
		AuthorizationURL: sess.URL,
		Reference:        reference,
	}, nil
}

func (g *StripeGateway) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	params := &stripe.PaymentIntentSearchParams{
		SearchParams: stripe.SearchParams{
			Query: fmt.Sprintf("metadata['reference']:'%s'", reference),
		},
	}
	params.Context = ctx

	iter := paymentintent.Search(params)
	for iter.Next() {
		pi := iter.PaymentIntent()
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			continue
		}
		return &VerifyResult{
			Success:   true,
			Reference: reference,
			Metadata:  pi.Metadata,
		}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe payment lookup failed: %w", err)
	}

	utils.GetLogger().Warn("No successful payment found for reference", zap.String("reference", reference))
	return &VerifyResult{Success: false, Reference: reference}, nil
}
