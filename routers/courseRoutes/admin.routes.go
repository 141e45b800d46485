package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	admin := app.Group("/admin/course")

	// Course CRUD
	admin.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	admin.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.AdminUpdateCourse)
	admin.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)
	admin.Get("/list", middleware.JWTMiddleware, controllers.AdminGetAllCourses)
	admin.Post("/:id/publish", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminPublishCourse)

	// Section and lesson management
	admin.Post("/:id/section", middleware.JWTMiddleware, validators.CreateSection(), controllers.AdminCreateSection)
	admin.Post("/:course_id/section/:section_id/lesson", middleware.JWTMiddleware, validators.CreateLesson(), controllers.AdminCreateLesson)

	// Dashboard
	dash := app.Group("/admin/dashboard")
	dash.Get("/stats", middleware.JWTMiddleware, controllers.AdminDashboardStats)
}
