package courseControllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// lessonView is a lesson as shown to a possibly unenrolled user. Paid lesson
// bodies are withheld unless the caller has access or the lesson is a free
// preview.
type lessonView struct {
	ID            uint   `json:"id"`
	SectionID     uint   `json:"section_id"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url,omitempty"`
	TextContent   string `json:"text_content,omitempty"`
	IsFreePreview bool   `json:"is_free_preview"`
	OrderIndex    int    `json:"order_index"`
	Locked        bool   `json:"locked"`
}

// GetCourseDetails returns a published course with its sections and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections)

	// hasAccess mirrors the enrollment access check: completed payment only
	var enrollment courseModels.Enrollment
	hasAccess := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = ?",
			userID, courseID, courseModels.PaymentStatusCompleted, false).
		First(&enrollment).Error == nil

	var lessons []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("section_id asc, order_index asc").Find(&lessons)

	lessonViews := make([]lessonView, len(lessons))
	for i, lesson := range lessons {
		view := lessonView{
			ID:            lesson.ID,
			SectionID:     lesson.SectionID,
			Title:         lesson.Title,
			IsFreePreview: lesson.IsFreePreview,
			OrderIndex:    lesson.OrderIndex,
		}
		if course.IsFree || hasAccess || lesson.IsFreePreview {
			view.VideoURL = lesson.VideoURL
			view.TextContent = lesson.TextContent
		} else {
			view.Locked = true
		}
		lessonViews[i] = view
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"sections":   sections,
		"lessons":    lessonViews,
		"has_access": hasAccess,
		"price":      course.EffectivePrice(),
	})
}
