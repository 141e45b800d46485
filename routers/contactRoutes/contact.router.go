package contactRoutes

import (
	controllers "lms/controllers/contact"
	"lms/middleware"
	validators "lms/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	contact := app.Group("/contact")

	// Public submission
	contact.Post("/create", validators.CreateTicket(), controllers.CreateTicket)

	// Admin management
	contact.Get("/all", middleware.JWTMiddleware, middleware.AdminOnly, validators.TicketList(), controllers.GetAllTickets)
	contact.Get("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.TicketID(), controllers.GetTicket)
	contact.Put("/update-status/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.UpdateStatus(), controllers.UpdateTicketStatus)
	contact.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.TicketID(), controllers.DeleteTicket)
}
