package paymentControllers

import (
	"math"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder creates a payment order at the gateway using the active
// credential. Nothing is persisted locally; the order lives at the gateway
// until the enrollment is finalized.
func CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrder").(*struct {
		Amount   float64 `json:"amount"`
		Currency *string `json:"currency"`
		Receipt  *string `json:"receipt"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var credential models.PaymentCredential
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", models.CredentialStatusActive, false).
		First(&credential).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active payment credential found!", nil)
	}

	if credential.KeyID == "" || credential.KeySecret == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment credential is misconfigured!", nil)
	}

	currency := "INR"
	if reqData.Currency != nil && *reqData.Currency != "" {
		currency = *reqData.Currency
	}

	receipt := utils.GenerateReceiptID()
	if reqData.Receipt != nil && *reqData.Receipt != "" {
		receipt = *reqData.Receipt
	}

	amountPaise := int64(math.Round(reqData.Amount * 100))

	order, err := utils.CreateRazorpayOrder(credential.KeyID, credential.KeySecret, amountPaise, currency, receipt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", fiber.Map{
		"orderId":     order.ID,
		"amount":      reqData.Amount,
		"currency":    currency,
		"receipt":     order.Receipt,
		"razorPayKey": credential.KeyID,
	})
}
