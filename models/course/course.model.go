package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title         string   `json:"title"`
	Description   string   `json:"description" gorm:"type:text"`
	InstructorID  uint     `json:"instructor_id" gorm:"index"`
	Price         float64  `json:"price" gorm:"default:0"`
	DiscountPrice *float64 `json:"discount_price"`
	IsFree        bool     `json:"is_free" gorm:"default:false"`
	ThumbnailURL  string   `json:"thumbnail_url"`
	IsPublished   bool     `json:"is_published" gorm:"default:false"`
	IsDeleted     bool     `gorm:"default:false"`
}

// EffectivePrice returns the amount charged at checkout
func (c *Course) EffectivePrice() float64 {
	if c.IsFree {
		return 0
	}
	if c.DiscountPrice != nil && *c.DiscountPrice > 0 && *c.DiscountPrice < c.Price {
		return *c.DiscountPrice
	}
	return c.Price
}

// Section represents an ordered group of lessons within a course
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// Lesson is a single unit of course content
type Lesson struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	SectionID     uint   `json:"section_id" gorm:"index;not null"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	TextContent   string `json:"text_content" gorm:"type:text"`
	IsFreePreview bool   `json:"is_free_preview" gorm:"default:false"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
	IsDeleted     bool   `gorm:"default:false"`
}
