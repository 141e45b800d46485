package enrollmentControllers

import (
	"fmt"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// DownloadCertificate returns the certificate document for a fully completed
// enrollment. The certificate record is issued on first download and reused
// afterwards.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.PaymentStatus != courseModels.PaymentStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment payment is not completed!", nil)
	}

	if enrollment.CompletionPercentage < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before downloading the certificate!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var certificate courseModels.Certificate
	err := database.Database.Db.
		Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).
		First(&certificate).Error
	if err != nil {
		certificate = courseModels.Certificate{
			UserID:            userID,
			CourseID:          enrollment.CourseID,
			EnrollmentID:      enrollment.ID,
			CertificateNumber: utils.GenerateCertificateNumber(),
			IssuedAt:          time.Now(),
		}
		if err := database.Database.Db.Create(&certificate).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
		}
	}

	doc := utils.RenderCertificate(user.Name, course.Title, certificate.CertificateNumber, certificate.IssuedAt)

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate-%s.html"`, certificate.CertificateNumber))
	return c.Status(fiber.StatusOK).Send(doc)
}
