package enrollmentRoutes

import (
	controllers "lms/controllers/enrollment"
	"lms/middleware"
	validators "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollment := app.Group("/enrollment")

	enrollment.Post("/enroll/:courseId", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	enrollment.Post("/complete", middleware.JWTMiddleware, validators.CompleteEnrollment(), controllers.CompleteEnrollment)
	enrollment.Get("/my-courses", middleware.JWTMiddleware, controllers.GetMyCourses)
	enrollment.Get("/access/:courseId", middleware.JWTMiddleware, validators.AccessCheck(), controllers.CheckAccess)
	enrollment.Get("/:id", middleware.JWTMiddleware, validators.GetEnrollment(), controllers.GetEnrollment)
	enrollment.Post("/:id/complete-lesson", middleware.JWTMiddleware, validators.CompleteLesson(), controllers.CompleteLesson)
	enrollment.Post("/:id/submit-quiz", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	enrollment.Post("/:id/download-certificate", middleware.JWTMiddleware, validators.GetEnrollment(), controllers.DownloadCertificate)
}
