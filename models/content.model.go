package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Marketing content sections
const (
	ContentSectionHomepage    = "homepage"
	ContentSectionBanner      = "banner"
	ContentSectionAbout       = "about"
	ContentSectionCourse      = "course"
	ContentSectionTestimonial = "testimonial"
)

// AdminContent is homepage/marketing content managed by admins.
// Images holds a JSON array of relative upload URLs (max 5 per record).
type AdminContent struct {
	gorm.Model
	Section     string         `json:"section" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	Images      datatypes.JSON `json:"images"`
	IsPublished bool           `json:"is_published"`
	CreatedBy   uint           `json:"created_by" gorm:"index"`
	IsDeleted   bool           `gorm:"default:false"`
}
