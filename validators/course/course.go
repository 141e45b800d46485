package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func courseIDParam(c *fiber.Ctx, name string) (int, error) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}
	return id, nil
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := courseIDParam(c, "id")
		if err != nil {
			return err
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string   `json:"title"`
			Description   string   `json:"description"`
			Price         float64  `json:"price"`
			DiscountPrice *float64 `json:"discount_price"`
			IsFree        bool     `json:"is_free"`
			ThumbnailURL  string   `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if !reqData.IsFree && reqData.Price == 0 {
			errors["price"] = "Paid courses must have a price greater than 0!"
		}
		if reqData.DiscountPrice != nil && (*reqData.DiscountPrice < 0 || *reqData.DiscountPrice >= reqData.Price) {
			errors["discount_price"] = "Discount price must be between 0 and the course price!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := courseIDParam(c, "id")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title         *string  `json:"title"`
			Description   *string  `json:"description"`
			Price         *float64 `json:"price"`
			DiscountPrice *float64 `json:"discount_price"`
			IsFree        *bool    `json:"is_free"`
			ThumbnailURL  *string  `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"price": "Price must not be negative!",
			})
		}

		c.Locals("courseID", id)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := courseIDParam(c, "id")
		if err != nil {
			return err
		}

		reqData := new(struct {
			Title      string `json:"title"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title is required!",
			})
		}

		c.Locals("courseID", id)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c, "course_id")
		if err != nil {
			return err
		}

		sectionIDStr := strings.TrimSpace(c.Params("section_id"))
		sectionID, err2 := strconv.Atoi(sectionIDStr)
		if err2 != nil || sectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
		}

		reqData := new(struct {
			Title         string `json:"title"`
			VideoURL      string `json:"video_url"`
			TextContent   string `json:"text_content"`
			IsFreePreview bool   `json:"is_free_preview"`
			OrderIndex    int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title is required!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("sectionID", sectionID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}
