package contactValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Message = strings.TrimSpace(reqData.Message)

		if reqData.Name == "" || reqData.Email == "" || reqData.Subject == "" || reqData.Message == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All required fields must be filled", nil)
		}

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Invalid email address!",
			})
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

func TicketID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Ticket ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
		}

		c.Locals("ticketID", id)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		valid := map[string]bool{"pending": true, "resolved": true}
		if !valid[reqData.Status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Invalid status! Allowed: pending, resolved",
			})
		}

		c.Locals("ticketID", id)
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Status != nil {
			valid := map[string]bool{"pending": true, "resolved": true}
			if !valid[strings.ToLower(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: pending, resolved."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
