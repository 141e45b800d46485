package contactControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	contactRoutes "lms/routers/contactRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contactRoutes.SetupContactRoutes(app)
	return app
}

func createUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user-%d@example.com", time.Now().UnixNano()),
		Password: "not-used",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func validTicket() fiber.Map {
	return fiber.Map{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "9876543210",
		"subject": "Payment issue",
		"message": "My payment went through but the course is locked.",
	}
}

func TestCreateTicketMissingFields(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name  string
		strip string
	}{
		{name: "missing name", strip: "name"},
		{name: "missing email", strip: "email"},
		{name: "missing subject", strip: "subject"},
		{name: "missing message", strip: "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validTicket()
			delete(payload, tt.strip)

			resp, body := doJSON(t, app, http.MethodPost, "/contact/create", "", payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "All required fields must be filled", body["message"])
		})
	}
}

func TestCreateTicketInvalidEmail(t *testing.T) {
	app := setupApp(t)

	payload := validTicket()
	payload["email"] = "not-an-email"

	resp, body := doJSON(t, app, http.MethodPost, "/contact/create", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed!", body["message"])
}

func TestCreateTicket(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/contact/create", "", validTicket())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, models.TicketStatusPending, data["status"])
	assert.Equal(t, "Payment issue", data["subject"])
}

func TestTicketAdminFlow(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "ADMIN")

	resp, body := doJSON(t, app, http.MethodPost, "/contact/create", "", validTicket())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ticketID := int(body["data"].(map[string]interface{})["ID"].(float64))

	resp, body = doJSON(t, app, http.MethodGet, "/contact/all", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pagination := body["data"].(map[string]interface{})["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/contact/update-status/%d", ticketID), adminToken, fiber.Map{
		"status": "resolved",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TicketStatusResolved, body["data"].(map[string]interface{})["status"])

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/contact/update-status/%d", ticketID), adminToken, fiber.Map{
		"status": "closed",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/contact/%d", ticketID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/contact/%d", ticketID), adminToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTicketListStatusFilter(t *testing.T) {
	app := setupApp(t)
	_, adminToken := createUser(t, "ADMIN")

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/contact/create", "", validTicket())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	require.NoError(t, database.Database.Db.Model(&models.ContactTicket{}).
		Where("id = ?", 1).Update("status", models.TicketStatusResolved).Error)

	resp, body := doJSON(t, app, http.MethodGet, "/contact/all?status=resolved", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pagination := body["data"].(map[string]interface{})["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])

	resp, _ = doJSON(t, app, http.MethodGet, "/contact/all?status=junk", adminToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTicketRoutesRequireAdmin(t *testing.T) {
	app := setupApp(t)
	_, userToken := createUser(t, "USER")

	resp, body := doJSON(t, app, http.MethodGet, "/contact/all", userToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
