package enrollmentControllers

import (
	"encoding/json"
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CompleteLesson idempotently records a completed lesson against the
// enrollment and recomputes the completion percentage. A lesson that is
// already recorded does not double-count.
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData := c.Locals("validatedLesson").(*struct {
		LessonID uint `json:"lessonId"`
	})

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", reqData.LessonID, enrollment.CourseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
	}

	var existing courseModels.LessonCompletion
	err := database.Database.Db.
		Where("enrollment_id = ? AND lesson_id = ? AND is_deleted = ?", enrollment.ID, lesson.ID, false).
		First(&existing).Error
	if err == nil {
		// Idempotent: report current progress without double-counting
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already completed!", fiber.Map{
			"completion": existing,
			"enrollment": enrollment,
		})
	}

	completion := courseModels.LessonCompletion{
		EnrollmentID: enrollment.ID,
		UserID:       userID,
		CourseID:     enrollment.CourseID,
		LessonID:     lesson.ID,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson completion!", nil)
	}
	tx.Commit()

	recomputeProgress(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", fiber.Map{
		"completion": completion,
		"enrollment": enrollment,
	})
}

// SubmitQuiz appends a quiz attempt and refreshes derived progress fields.
// Scoring is supplied by the caller; the grading engine is external.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData := c.Locals("validatedQuiz").(*struct {
		LessonID uint        `json:"lessonId"`
		Answers  interface{} `json:"answers"`
		Score    int         `json:"score"`
		MaxScore int         `json:"maxScore"`
	})

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	answersJSON, err := json.Marshal(reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("enrollment_id = ? AND lesson_id = ? AND is_deleted = ?", enrollment.ID, reqData.LessonID, false).
		Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		EnrollmentID:  enrollment.ID,
		LessonID:      reqData.LessonID,
		Answers:       datatypes.JSON(answersJSON),
		Score:         reqData.Score,
		MaxScore:      reqData.MaxScore,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz attempt!", nil)
	}

	recomputeProgress(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempt submitted!", fiber.Map{
		"attempt":    attempt,
		"enrollment": enrollment,
	})
}

// recomputeProgress refreshes completion counters on the enrollment and
// flips it to fully completed once every lesson is done.
func recomputeProgress(enrollment *courseModels.Enrollment) {
	var totalLessons int64
	var completedLessons int64

	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).
		Count(&totalLessons)
	database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).
		Count(&completedLessons)

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)
	enrollment.CompletionPercentage = utils.CompletionPercentage(int(completedLessons), int(totalLessons))

	if enrollment.CompletionPercentage >= 100 && enrollment.CompletedAt == nil {
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := database.Database.Db.Save(enrollment).Error; err != nil {
		log.Printf("Failed to persist progress for enrollment %d: %v", enrollment.ID, err)
	}
}
