package processor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/Exela-Tech/Propeerty-Management/service"
)

// StripeClient wraps the Stripe checkout and webhook APIs behind the
// service's CheckoutClient interface.
type StripeClient struct {
	webhookSecret string
	returnURL     string
}

func NewStripeClient(apiKey, webhookSecret, returnURL string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{
		webhookSecret: webhookSecret,
		returnURL:     returnURL,
	}
}

// CreateCheckoutSession opens an embedded-UI checkout session for one
// rent payment and returns its client secret.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		UIMode:    stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		ReturnURL: stripe.String(c.returnURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Rent payment"),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("payment_id", req.PaymentID)

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.ClientSecret, nil
}

// CheckoutCompleted is the subset of a completed-session webhook event
// this service acts on.
type CheckoutCompleted struct {
	PaymentID string
	SessionID string
}

// DecodeCheckoutCompleted verifies the webhook signature and, when the
// event is a checkout.session.completed, extracts the payment id the
// session was created with. Other event types return (nil, nil).
func (c *StripeClient) DecodeCheckoutCompleted(payload []byte, sigHeader string) (*CheckoutCompleted, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return nil, err
	}
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, err
	}
	return &CheckoutCompleted{
		PaymentID: sess.Metadata["payment_id"],
		SessionID: sess.ID,
	}, nil
}
