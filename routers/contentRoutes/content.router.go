package contentRoutes

import (
	controllers "lms/controllers/content"
	"lms/middleware"
	validators "lms/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	content := app.Group("/content")

	content.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, validators.CreateContent(), controllers.CreateContent)
	content.Get("/", controllers.GetAllContent)
	content.Get("/:section", validators.ContentSection(), controllers.GetContentBySection)
	content.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.ContentID(), controllers.UpdateContent)
	content.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.ContentID(), controllers.DeleteContent)
}
