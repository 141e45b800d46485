package paymentRoutes

import (
	controllers "lms/controllers/payment"
	"lms/middleware"
	validators "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	razorpay := app.Group("/razorpay")

	// Credential management (admin)
	razorpay.Post("/credentials", middleware.JWTMiddleware, middleware.AdminOnly, validators.AddCredential(), controllers.AddCredential)
	razorpay.Get("/credentials/active", middleware.JWTMiddleware, middleware.AdminOnly, controllers.GetActiveCredential)
	razorpay.Patch("/credentials/:id/activate", middleware.JWTMiddleware, middleware.AdminOnly, validators.ActivateCredential(), controllers.ActivateCredential)

	// Order creation (authenticated users at checkout)
	razorpay.Post("/create_order", middleware.JWTMiddleware, validators.CreateOrder(), controllers.CreateOrder)

	// Gateway callback, authenticated by signature only
	razorpay.Post("/webhook", controllers.RazorpayWebhook)
}
