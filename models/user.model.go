package models

import "gorm.io/gorm"

// User represents a platform account (student, instructor or admin)
type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	IsDeleted bool   `gorm:"default:false"`
}
