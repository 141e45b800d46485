package authRoutes

import (
	controllers "lms/controllers/auth"
	"lms/middleware"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", validators.Register(), controllers.Register)
	auth.Post("/login", validators.Login(), controllers.Login)

	user := app.Group("/user")
	user.Get("/profile", middleware.JWTMiddleware, controllers.Profile)
}
