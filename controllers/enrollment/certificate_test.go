package enrollmentControllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func downloadCertificate(t *testing.T, app *fiber.App, token string, enrollmentID uint) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/enrollment/%d/download-certificate", enrollmentID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestDownloadCertificateRequiresFullCompletion(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t)
	course, lessons := createCourseWithLessons(t, true, 0, 2)
	enrollmentID := enrollFree(t, app, token, course.ID)

	resp := downloadCertificate(t, app, token, enrollmentID)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// One of two lessons is not enough
	r, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/enrollment/%d/complete-lesson", enrollmentID), token, fiber.Map{
		"lessonId": lessons[0].ID,
	})
	require.Equal(t, http.StatusOK, r.StatusCode)

	resp = downloadCertificate(t, app, token, enrollmentID)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownloadCertificateRequiresCompletedPayment(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)
	course, _ := createCourseWithLessons(t, false, 999, 1)

	enrollment := courseModels.Enrollment{
		UserID:               user.ID,
		CourseID:             course.ID,
		PaymentStatus:        courseModels.PaymentStatusPending,
		CompletionPercentage: 100,
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)

	resp := downloadCertificate(t, app, token, enrollment.ID)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownloadCertificate(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t)
	course, lessons := createCourseWithLessons(t, true, 0, 2)
	enrollmentID := enrollFree(t, app, token, course.ID)

	for _, lesson := range lessons {
		r, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/enrollment/%d/complete-lesson", enrollmentID), token, fiber.Map{
			"lessonId": lesson.ID,
		})
		require.Equal(t, http.StatusOK, r.StatusCode)
	}

	resp := downloadCertificate(t, app, token, enrollmentID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(doc), user.Name)
	assert.Contains(t, string(doc), course.Title)
	assert.True(t, strings.Contains(string(doc), "CERT-"))

	var certificate courseModels.Certificate
	require.NoError(t, database.Database.Db.
		Where("enrollment_id = ?", enrollmentID).First(&certificate).Error)

	// Second download reuses the issued certificate
	resp = downloadCertificate(t, app, token, enrollmentID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Certificate{}).
		Where("enrollment_id = ?", enrollmentID).Count(&count)
	assert.Equal(t, int64(1), count)
}
