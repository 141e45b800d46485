package contactControllers

import (
	"strings"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket stores a public contact form submission
func CreateTicket(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTicket").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.ContactTicket{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Phone:   reqData.Phone,
		Subject: reqData.Subject,
		Message: reqData.Message,
		Status:  models.TicketStatusPending,
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket submitted successfully!", ticket)
}

// GetAllTickets lists tickets with pagination and status filter, admin only
func GetAllTickets(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.ContactTicket{}).Where("is_deleted = ?", false)
	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToLower(*reqData.Status))
	}

	var total int64
	db.Count(&total)

	var tickets []models.ContactTicket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetTicket returns a single ticket by id, admin only
func GetTicket(c *fiber.Ctx) error {
	ticketID := c.Locals("ticketID").(int)

	var ticket models.ContactTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket fetched successfully!", ticket)
}

// UpdateTicketStatus flips a ticket between pending and resolved, admin only
func UpdateTicketStatus(c *fiber.Ctx) error {
	ticketID := c.Locals("ticketID").(int)
	reqData := c.Locals("validatedStatus").(*struct {
		Status string `json:"status"`
	})

	var ticket models.ContactTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	ticket.Status = reqData.Status
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket status updated!", ticket)
}

// DeleteTicket soft-deletes a ticket, admin only
func DeleteTicket(c *fiber.Ctx) error {
	ticketID := c.Locals("ticketID").(int)

	var ticket models.ContactTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	ticket.IsDeleted = true
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket deleted successfully!", nil)
}
