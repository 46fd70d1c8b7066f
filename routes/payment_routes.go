package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Exela-Tech/Propeerty-Management/controller"
	"github.com/Exela-Tech/Propeerty-Management/middleware"
)

func RegisterPaymentRoutes(app *fiber.App, authMiddleware fiber.Handler, pc *controller.PaymentController, wc *controller.WebhookController) {
	api := app.Group("/api")
	p := api.Group("/payments")

	// =========================
	// RENTER ROUTES
	// =========================
	p.Get("/", authMiddleware, pc.List)                  // list caller's rent payments
	p.Post("/:id/checkout", authMiddleware, pc.Checkout) // open hosted checkout session
	p.Post("/:id/confirm", authMiddleware, pc.Confirm)   // mark payment paid

	// =========================
	// ADMIN ROUTE
	// =========================
	p.Get(
		"/all",
		authMiddleware,
		middleware.RoleRequired("admin"),
		pc.ListAll,
	)

	// =========================
	// SINGLE RESOURCE
	// =========================
	p.Get("/:id", authMiddleware, pc.Get)

	// =========================
	// PROCESSOR WEBHOOK
	// =========================
	api.Post("/webhooks/stripe", wc.HandleStripe)
}
