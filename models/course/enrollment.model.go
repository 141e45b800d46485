package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment payment status values. Completed is terminal.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Enrollment grants a user access to a course's paid content and tracks
// progress. The (user, course) pair is unique so concurrent enroll requests
// cannot create duplicates.
type Enrollment struct {
	gorm.Model
	UserID               uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID             uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	PaymentMethod        string     `json:"payment_method"`
	TransactionID        string     `json:"transaction_id" gorm:"index"`
	OrderID              string     `json:"order_id"`
	PaymentStatus        string     `json:"payment_status" gorm:"default:'pending';index"`
	CompletedLessons     int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons         int        `json:"total_lessons" gorm:"default:0"`
	CompletionPercentage int        `json:"completion_percentage" gorm:"default:0"`
	CompletedAt          *time.Time `json:"completed_at"`
	IsDeleted            bool       `gorm:"default:false"`
}

// LessonCompletion records one completed lesson per row
type LessonCompletion struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"index;not null"`
	UserID       uint `json:"user_id" gorm:"index;not null"`
	CourseID     uint `json:"course_id" gorm:"index;not null"`
	LessonID     uint `json:"lesson_id" gorm:"index;not null"`
	IsDeleted    bool `gorm:"default:false"`
}

// QuizAttempt records a quiz submission against an enrollment.
// Answers keeps the raw submitted payload; scoring is external.
type QuizAttempt struct {
	gorm.Model
	EnrollmentID  uint           `json:"enrollment_id" gorm:"index;not null"`
	LessonID      uint           `json:"lesson_id" gorm:"index"`
	Answers       datatypes.JSON `json:"answers"`
	Score         int            `json:"score"`
	MaxScore      int            `json:"max_score"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}
