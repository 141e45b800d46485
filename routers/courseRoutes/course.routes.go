package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/course")

	course.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	course.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
}
