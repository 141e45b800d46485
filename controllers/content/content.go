package contentControllers

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateContent stores marketing content with up to 5 uploaded images.
// Images land under the upload dir and are referenced by relative URL.
func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	section := strings.ToLower(strings.TrimSpace(c.FormValue("section")))
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))

	imageURLs := []string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		destDir := filepath.Join(config.AppConfig.UploadDir, "content")
		for _, file := range files {
			savedPath, err := utils.SaveUploadedFile(file, destDir)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded image!", nil)
			}
			imageURLs = append(imageURLs, utils.GetFileURL(savedPath))
		}
	}

	imagesJSON, err := json.Marshal(imageURLs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode images!", nil)
	}

	content := models.AdminContent{
		Section:     section,
		Title:       title,
		Description: description,
		Images:      datatypes.JSON(imagesJSON),
		IsPublished: true,
		CreatedBy:   userID,
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// GetAllContent lists all non-deleted content records
func GetAllContent(c *fiber.Ctx) error {
	var contents []models.AdminContent
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at DESC").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contents)
}

// GetContentBySection lists published content for one section
func GetContentBySection(c *fiber.Ctx) error {
	section := c.Locals("contentSection").(string)

	var contents []models.AdminContent
	if err := database.Database.Db.
		Where("section = ? AND is_deleted = ? AND is_published = ?", section, false, true).
		Order("created_at DESC").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contents)
}

// UpdateContent updates title/description/publish state of a record
func UpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.AdminContent
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		IsPublished *bool   `json:"is_published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		content.Title = strings.TrimSpace(*reqData.Title)
	}
	if reqData.Description != nil {
		content.Description = strings.TrimSpace(*reqData.Description)
	}
	if reqData.IsPublished != nil {
		content.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// DeleteContent soft-deletes a content record
func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.AdminContent
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
