package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Exela-Tech/Propeerty-Management/currency"
	"github.com/Exela-Tech/Propeerty-Management/model"
	"github.com/Exela-Tech/Propeerty-Management/service"
)

// Payments is the slice of the payment service the HTTP layer uses.
type Payments interface {
	InitiateCheckout(ctx context.Context, callerID, paymentID string) (string, error)
	ConfirmPaid(ctx context.Context, callerID, paymentID, processorRef string) (*model.Payment, error)
	ConfirmFromProcessor(ctx context.Context, paymentID, processorRef string) error
	GetPayment(ctx context.Context, callerID, paymentID string) (*model.Payment, error)
	ListRenterPayments(ctx context.Context, callerID string) ([]model.Payment, error)
	ListAllPayments(ctx context.Context) ([]model.Payment, error)
}

type PaymentController struct {
	svc Payments
}

func NewPaymentController(svc Payments) *PaymentController {
	return &PaymentController{svc: svc}
}

func (pc *PaymentController) List(c *fiber.Ctx) error {
	payments, err := pc.svc.ListRenterPayments(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return c.JSON(fiber.Map{"data": payments})
}

func (pc *PaymentController) ListAll(c *fiber.Ctx) error {
	payments, err := pc.svc.ListAllPayments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return c.JSON(fiber.Map{"data": payments})
}

func (pc *PaymentController) Get(c *fiber.Ctx) error {
	payment, err := pc.svc.GetPayment(c.Context(), callerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

// Checkout opens a processor checkout session for the payment and
// returns the client secret the frontend mounts the hosted form with.
func (pc *PaymentController) Checkout(c *fiber.Ctx) error {
	secret, err := pc.svc.InitiateCheckout(c.Context(), callerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"client_secret": secret})
}

func (pc *PaymentController) Confirm(c *fiber.Ctx) error {
	var body struct {
		ProcessorRef string `json:"processor_ref"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProcessorRef == "" {
		return c.Status(400).JSON(fiber.Map{"error": "processor_ref is required"})
	}

	payment, err := pc.svc.ConfirmPaid(c.Context(), callerID(c), c.Params("id"), body.ProcessorRef)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrAlreadyPaid):
		return fiber.StatusConflict
	case errors.Is(err, currency.ErrInvalidAmount),
		errors.Is(err, currency.ErrUnsupportedCurrency):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
