package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundit/config"
	"foundit/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type authUser struct {
	UserID      uint
	OrganizerID uint
	Token       string
}

// newTestApp builds a Fiber app backed by a per-test in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{JWTSecret: "test-secret-key"}
	srv := NewServerWithDB(cfg, db, nil)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

// registerOrganizer signs up a fresh user+organizer pair and returns its token.
func registerOrganizer(t *testing.T, app *fiber.App, prefix string) authUser {
	t.Helper()

	payload := map[string]string{
		"username":     prefix,
		"email":        fmt.Sprintf("%s@example.com", prefix),
		"password":     "Sturdy-pass1",
		"first_name":   "Test",
		"last_name":    "Organizer",
		"phone_number": "615-555-0100",
	}

	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/register", payload))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
		Organizer struct {
			ID uint `json:"id"`
		} `json:"organizer"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	require.NotZero(t, body.User.ID)
	require.NotZero(t, body.Organizer.ID)

	return authUser{UserID: body.User.ID, OrganizerID: body.Organizer.ID, Token: body.Token}
}

// createCategory inserts a category through the API and returns its id.
func createCategory(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()

	resp := doReq(t, app, authReq(t, http.MethodPost, "/categories", token, map[string]string{"name": name}))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotZero(t, body.ID)
	return body.ID
}

// createItem inserts an item owned by the token's organizer and returns its id.
func createItem(t *testing.T, app *fiber.App, token, name string, quantity int, categoryID uint) uint {
	t.Helper()

	payload := map[string]any{
		"name":        name,
		"description": "test item",
		"quantity":    quantity,
		"location":    "Front desk",
		"category":    categoryID,
	}
	resp := doReq(t, app, authReq(t, http.MethodPost, "/items", token, payload))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotZero(t, body.ID)
	return body.ID
}

func itemPath(id uint) string {
	return fmt.Sprintf("/items/%d", id)
}

func categoryPath(id uint) string {
	return fmt.Sprintf("/categories/%d", id)
}

func organizerPath(id uint) string {
	return fmt.Sprintf("/organizers/%d", id)
}

func userPath(id uint) string {
	return fmt.Sprintf("/users/%d", id)
}

func doReq(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonReq(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	if payload == nil {
		return httptest.NewRequest(method, path, nil)
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authReq(t *testing.T, method, path, token string, payload any) *http.Request {
	t.Helper()
	req := jsonReq(t, method, path, payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
