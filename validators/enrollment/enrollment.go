package enrollmentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name, label string) (int, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	return id, nil
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseIDParam(c, "courseId", "Course ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			PaymentMethod string `json:"paymentMethod"`
			TransactionID string `json:"transactionId"`
			OrderID       string `json:"orderId"`
			Signature     string `json:"signature"`
			PaymentStatus string `json:"paymentStatus"`
		})

		// Body is optional for free courses
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		reqData.TransactionID = strings.TrimSpace(reqData.TransactionID)
		reqData.OrderID = strings.TrimSpace(reqData.OrderID)

		if reqData.PaymentStatus != "" {
			valid := map[string]bool{"pending": true, "completed": true, "failed": true}
			if !valid[strings.ToLower(reqData.PaymentStatus)] {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"paymentStatus": "Invalid payment status! Allowed: pending, completed, failed",
				})
			}
			reqData.PaymentStatus = strings.ToLower(reqData.PaymentStatus)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func CompleteEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID     string `json:"paymentId"`
			TransactionID string `json:"transactionId"`
			CourseID      uint   `json:"courseId"`
			PaymentMethod string `json:"paymentMethod"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.PaymentID = strings.TrimSpace(reqData.PaymentID)
		reqData.TransactionID = strings.TrimSpace(reqData.TransactionID)

		if reqData.PaymentID == "" && reqData.CourseID == 0 {
			errors["paymentId"] = "Payment ID or course ID is required!"
		}
		if reqData.TransactionID == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

func AccessCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseIDParam(c, "courseId", "Course ID")
		if err != nil {
			return err
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func GetEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := parseIDParam(c, "id", "Enrollment ID")
		if err != nil {
			return err
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := parseIDParam(c, "id", "Enrollment ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			LessonID uint `json:"lessonId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LessonID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"lessonId": "Lesson ID is required!",
			})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := parseIDParam(c, "id", "Enrollment ID")
		if err != nil {
			return err
		}

		reqData := new(struct {
			LessonID uint        `json:"lessonId"`
			Answers  interface{} `json:"answers"`
			Score    int         `json:"score"`
			MaxScore int         `json:"maxScore"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Answers are required!",
			})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
