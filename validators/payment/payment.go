package paymentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func AddCredential() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			KeyID         string `json:"keyId"`
			KeySecret     string `json:"keySecret"`
			WebhookSecret string `json:"webhookSecret"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.KeyID = strings.TrimSpace(reqData.KeyID)
		if reqData.KeyID == "" {
			errors["keyId"] = "Key ID is required!"
		}

		reqData.KeySecret = strings.TrimSpace(reqData.KeySecret)
		if reqData.KeySecret == "" {
			errors["keySecret"] = "Key secret is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCredential", reqData)
		return c.Next()
	}
}

func ActivateCredential() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Credential ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid credential ID!", nil)
		}

		c.Locals("credentialID", id)
		return c.Next()
	}
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount   float64 `json:"amount"`
			Currency *string `json:"currency"`
			Receipt  *string `json:"receipt"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if reqData.Currency != nil {
			cur := strings.ToUpper(strings.TrimSpace(*reqData.Currency))
			if len(cur) != 3 {
				errors["currency"] = "Currency must be a 3-letter code!"
			}
			*reqData.Currency = cur
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}
