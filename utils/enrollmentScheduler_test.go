package utils

import (
	"path/filepath"
	"testing"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestExpirePendingEnrollments(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	stale := courseModels.Enrollment{UserID: 1, CourseID: 1, PaymentStatus: courseModels.PaymentStatusPending}
	fresh := courseModels.Enrollment{UserID: 1, CourseID: 2, PaymentStatus: courseModels.PaymentStatusPending}
	done := courseModels.Enrollment{UserID: 1, CourseID: 3, PaymentStatus: courseModels.PaymentStatusCompleted}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&done).Error)

	// Age the stale and completed rows past the 24h cutoff
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("id IN ?", []uint{stale.ID, done.ID}).
		Update("created_at", old).Error)

	expirePendingEnrollments()

	var reloadedStale courseModels.Enrollment
	require.NoError(t, db.First(&reloadedStale, stale.ID).Error)
	assert.Equal(t, courseModels.PaymentStatusFailed, reloadedStale.PaymentStatus)

	var reloadedFresh courseModels.Enrollment
	require.NoError(t, db.First(&reloadedFresh, fresh.ID).Error)
	assert.Equal(t, courseModels.PaymentStatusPending, reloadedFresh.PaymentStatus)

	var reloadedDone courseModels.Enrollment
	require.NoError(t, db.First(&reloadedDone, done.ID).Error)
	assert.Equal(t, courseModels.PaymentStatusCompleted, reloadedDone.PaymentStatus)
}
