package authControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"

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
	authRoutes.SetupAuthRoutes(app)
	return app
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

func TestRegister(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Asha Verma",
		"email":    "Asha@Example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", user["email"])
	assert.Equal(t, "USER", user["role"])
	assert.NotContains(t, user, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	payload := fiber.Map{"name": "Asha Verma", "email": "asha@example.com", "password": "supersecret"}

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name    string
		payload fiber.Map
	}{
		{name: "short password", payload: fiber.Map{"name": "A", "email": "a@example.com", "password": "short"}},
		{name: "bad email", payload: fiber.Map{"name": "A", "email": "not-an-email", "password": "supersecret"}},
		{name: "missing name", payload: fiber.Map{"email": "a@example.com", "password": "supersecret"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/auth/register", "", tt.payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Validation failed!", body["message"])
		})
	}
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	// Issued token works against a protected route
	resp, body = doJSON(t, app, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "asha@example.com", body["data"].(map[string]interface{})["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password!", body["message"])
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/user/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
