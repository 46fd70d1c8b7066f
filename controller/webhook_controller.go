package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Exela-Tech/Propeerty-Management/processor"
	"github.com/Exela-Tech/Propeerty-Management/service"
)

type WebhookController struct {
	stripe *processor.StripeClient
	svc    Payments
}

func NewWebhookController(stripe *processor.StripeClient, svc Payments) *WebhookController {
	return &WebhookController{stripe: stripe, svc: svc}
}

// HandleStripe confirms a payment when the processor reports its
// checkout session completed. Stripe retries on non-2xx responses, so
// an already-paid payment is acknowledged, not failed.
func (wc *WebhookController) HandleStripe(c *fiber.Ctx) error {
	completed, err := wc.stripe.DecodeCheckoutCompleted(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("stripe webhook: decode failed: %v", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if completed == nil {
		// Event type we don't act on.
		return c.SendStatus(fiber.StatusOK)
	}
	if completed.PaymentID == "" {
		log.Printf("stripe webhook: session %s has no payment_id metadata", completed.SessionID)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = wc.svc.ConfirmFromProcessor(c.Context(), completed.PaymentID, completed.SessionID)
	switch {
	case err == nil, errors.Is(err, service.ErrAlreadyPaid):
		return c.SendStatus(fiber.StatusOK)
	case errors.Is(err, service.ErrNotFound):
		log.Printf("stripe webhook: payment %s not found", completed.PaymentID)
		return c.SendStatus(fiber.StatusNotFound)
	default:
		log.Printf("stripe webhook: confirm failed for payment %s: %v", completed.PaymentID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
