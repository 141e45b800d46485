package contentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

var validSections = map[string]bool{
	"homepage":    true,
	"banner":      true,
	"about":       true,
	"course":      true,
	"testimonial": true,
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.ToLower(strings.TrimSpace(c.FormValue("section")))
		title := strings.TrimSpace(c.FormValue("title"))

		errors := make(map[string]string)

		if section == "" {
			errors["section"] = "Section is required!"
		} else if !validSections[section] {
			errors["section"] = "Invalid section! Allowed: homepage, banner, about, course, testimonial"
		}

		if title == "" {
			errors["title"] = "Title is required!"
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			if len(form.File["images"]) > 5 {
				errors["images"] = "A maximum of 5 images is allowed!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

func ContentSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.ToLower(strings.TrimSpace(c.Params("section")))
		if !validSections[section] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section!", nil)
		}

		c.Locals("contentSection", section)
		return c.Next()
	}
}

func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
		}

		c.Locals("contentID", id)
		return c.Next()
	}
}
