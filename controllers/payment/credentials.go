package paymentControllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// AddCredential stores a new Razorpay key set and makes it the active one.
// Deactivation of previous credentials and insertion of the new one run in a
// single transaction so that at most one credential is ever active.
func AddCredential(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCredential").(*struct {
		KeyID         string `json:"keyId"`
		KeySecret     string `json:"keySecret"`
		WebhookSecret string `json:"webhookSecret"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	credential := models.PaymentCredential{
		KeyID:         reqData.KeyID,
		KeySecret:     reqData.KeySecret,
		WebhookSecret: reqData.WebhookSecret,
		Status:        models.CredentialStatusActive,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Model(&models.PaymentCredential{}).
		Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
		Update("status", models.CredentialStatusInactive).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store credential!", nil)
	}
	if err := tx.Create(&credential).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store credential!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Credential added and activated!", credential)
}

// GetActiveCredential returns the single active credential, secrets omitted
func GetActiveCredential(c *fiber.Ctx) error {
	var credential models.PaymentCredential
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
		First(&credential).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active payment credential found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active credential fetched!", credential)
}

// ActivateCredential makes the given credential the active one
func ActivateCredential(c *fiber.Ctx) error {
	credentialID := c.Locals("credentialID").(int)

	var credential models.PaymentCredential
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", credentialID, false).
		First(&credential).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Credential not found!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Model(&models.PaymentCredential{}).
		Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
		Update("status", models.CredentialStatusInactive).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate credential!", nil)
	}
	if err := tx.Model(&credential).Update("status", models.CredentialStatusActive).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate credential!", nil)
	}
	tx.Commit()

	credential.Status = models.CredentialStatusActive
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credential activated!", credential)
}
