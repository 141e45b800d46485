package enrollmentControllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse creates or updates the enrollment for (user, course).
//
// Free courses are finalized immediately with paymentStatus=completed no
// matter what the client sent. Paid courses require a transaction id; they
// transition to completed only through a verified checkout signature here or
// through the gateway webhook. An already-completed enrollment is returned
// unchanged.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	reqData := c.Locals("validatedEnrollment").(*struct {
		PaymentMethod string `json:"paymentMethod"`
		TransactionID string `json:"transactionId"`
		OrderID       string `json:"orderId"`
		Signature     string `json:"signature"`
		PaymentStatus string `json:"paymentStatus"`
	})

	paymentStatus := courseModels.PaymentStatusPending
	paymentMethod := reqData.PaymentMethod

	if course.IsFree {
		// Free courses complete immediately regardless of supplied status
		paymentStatus = courseModels.PaymentStatusCompleted
		if paymentMethod == "" {
			paymentMethod = "free"
		}
	} else {
		if reqData.TransactionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction ID is required for paid courses!", nil)
		}

		if reqData.Signature != "" {
			var credential models.PaymentCredential
			if err := database.Database.Db.
				Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
				First(&credential).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active payment credential found!", nil)
			}
			if !utils.VerifyPaymentSignature(reqData.OrderID, reqData.TransactionID, reqData.Signature, credential.KeySecret) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment signature!", nil)
			}
			paymentStatus = courseModels.PaymentStatusCompleted
		} else if reqData.PaymentStatus == courseModels.PaymentStatusFailed {
			paymentStatus = courseModels.PaymentStatusFailed
		}
		// Unverified completion claims stay pending until the webhook confirms
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalLessons)

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error

	if err == nil {
		// Existing enrollment: completed is terminal, otherwise update in place
		if enrollment.PaymentStatus == courseModels.PaymentStatusCompleted {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course!", enrollment)
		}

		enrollment.PaymentMethod = paymentMethod
		enrollment.TransactionID = reqData.TransactionID
		enrollment.OrderID = reqData.OrderID
		enrollment.PaymentStatus = paymentStatus
		enrollment.TotalLessons = int(totalLessons)

		if err := database.Database.Db.Save(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated!", enrollment)
	}

	enrollment = courseModels.Enrollment{
		UserID:        userID,
		CourseID:      uint(courseID),
		PaymentMethod: paymentMethod,
		TransactionID: reqData.TransactionID,
		OrderID:       reqData.OrderID,
		PaymentStatus: paymentStatus,
		TotalLessons:  int(totalLessons),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	if enrollment.PaymentStatus == courseModels.PaymentStatusCompleted {
		go func() {
			if err := utils.SendEnrollmentEmail(user.Email, user.Name, course.Title); err != nil {
				log.Printf("Failed to send enrollment email: %v", err)
			}
		}()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// CompleteEnrollment transitions a pending enrollment to completed. Used by
// the generic checkout widget which reports the gateway order id back.
func CompleteEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := c.Locals("validatedCompletion").(*struct {
		PaymentID     string `json:"paymentId"`
		TransactionID string `json:"transactionId"`
		CourseID      uint   `json:"courseId"`
		PaymentMethod string `json:"paymentMethod"`
	})

	var enrollment courseModels.Enrollment
	db := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false)
	if reqData.PaymentID != "" {
		db = db.Where("order_id = ?", reqData.PaymentID)
	} else {
		db = db.Where("course_id = ?", reqData.CourseID)
	}
	if err := db.First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.PaymentStatus == courseModels.PaymentStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment already completed!", enrollment)
	}

	enrollment.TransactionID = reqData.TransactionID
	enrollment.PaymentStatus = courseModels.PaymentStatusCompleted
	if reqData.PaymentMethod != "" {
		enrollment.PaymentMethod = reqData.PaymentMethod
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed!", enrollment)
}

// CheckAccess answers whether the user may view a course's paid content.
// Advisory only; free-preview lessons bypass it in the lesson handler.
func CheckAccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = ?",
			userID, courseID, courseModels.PaymentStatusCompleted, false).
		First(&enrollment).Error

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access check done!", fiber.Map{
		"hasAccess": err == nil,
	})
}

// GetMyCourses lists the current user's enrollments with course info
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle     string  `json:"course_title"`
		CoursePrice     float64 `json:"course_price"`
		CourseIsFree    bool    `json:"course_is_free"`
		CourseThumbnail string  `json:"course_thumbnail"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:      e,
			CourseTitle:     course.Title,
			CoursePrice:     course.Price,
			CourseIsFree:    course.IsFree,
			CourseThumbnail: course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetEnrollment returns a single enrollment owned by the current user
func GetEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}
