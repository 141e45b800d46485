package utils

import (
	"log"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// expirePendingEnrollments marks payment-pending enrollments older than 24h
// as failed. Completed enrollments are never touched.
func expirePendingEnrollments() {
	cutoff := time.Now().Add(-24 * time.Hour)

	result := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("payment_status = ? AND is_deleted = ? AND created_at < ?", courseModels.PaymentStatusPending, false, cutoff).
		Update("payment_status", courseModels.PaymentStatusFailed)

	if result.Error != nil {
		log.Printf("Failed to expire pending enrollments: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Expired %d stale pending enrollments", result.RowsAffected)
	}
}

// InitializeEnrollmentScheduler starts the hourly sweep of stale pending
// enrollments and returns the running scheduler.
func InitializeEnrollmentScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", expirePendingEnrollments); err != nil {
		log.Printf("Failed to schedule enrollment sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("Enrollment scheduler started.")
	return c
}
