package paymentControllers

import (
	"encoding/json"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// webhookEvent mirrors the gateway's webhook payload shape
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string            `json:"id"`
				OrderID string            `json:"order_id"`
				Method  string            `json:"method"`
				Notes   map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// RazorpayWebhook finalizes enrollments from gateway callbacks. The signature
// is recomputed over the raw body with the stored webhook secret before any
// state change; an unverifiable callback is rejected outright.
func RazorpayWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("X-Razorpay-Signature")

	var credential models.PaymentCredential
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
		First(&credential).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active payment credential found!", nil)
	}

	if !utils.VerifyWebhookSignature(body, signature, credential.WebhookSecret) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook signature!", nil)
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
	}

	switch event.Event {
	case "payment.captured":
		return handlePaymentCaptured(c, &event)
	case "payment.failed":
		return handlePaymentFailed(c, &event)
	}

	// Unhandled events are acknowledged so the gateway stops retrying
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event ignored.", nil)
}

func handlePaymentCaptured(c *fiber.Ctx, event *webhookEvent) error {
	entity := event.Payload.Payment.Entity

	enrollment, err := findEnrollmentForPayment(entity.OrderID, entity.Notes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found for payment!", nil)
	}

	// Completed is terminal; replayed webhooks are no-ops
	if enrollment.PaymentStatus == courseModels.PaymentStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment already completed.", nil)
	}

	enrollment.TransactionID = entity.ID
	enrollment.PaymentStatus = courseModels.PaymentStatusCompleted
	if entity.Method != "" {
		enrollment.PaymentMethod = entity.Method
	}

	if err := database.Database.Db.Save(enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize enrollment!", nil)
	}

	log.Printf("Webhook completed enrollment %d (payment %s)", enrollment.ID, entity.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed.", nil)
}

func handlePaymentFailed(c *fiber.Ctx, event *webhookEvent) error {
	entity := event.Payload.Payment.Entity

	enrollment, err := findEnrollmentForPayment(entity.OrderID, entity.Notes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No matching enrollment.", nil)
	}

	if enrollment.PaymentStatus != courseModels.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment not pending.", nil)
	}

	enrollment.PaymentStatus = courseModels.PaymentStatusFailed
	if err := database.Database.Db.Save(enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment marked failed.", nil)
}

// findEnrollmentForPayment locates the enrollment either by the gateway order
// id or by the user/course ids carried in the payment notes.
func findEnrollmentForPayment(orderID string, notes map[string]string) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment

	if orderID != "" {
		if err := database.Database.Db.
			Where("order_id = ? AND is_deleted = ?", orderID, false).
			First(&enrollment).Error; err == nil {
			return &enrollment, nil
		}
	}

	userID := notes["user_id"]
	courseID := notes["course_id"]
	if userID == "" || courseID == "" {
		return nil, fiber.ErrNotFound
	}

	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
