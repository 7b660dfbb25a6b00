package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
		expectedError  bool
	}{
		{
			name: "Valid registration",
			requestBody: map[string]string{
				"username":     "sam_birky",
				"email":        "sam@example.com",
				"password":     "Sturdy-pass1",
				"first_name":   "Sam",
				"last_name":    "Birky",
				"phone_number": "615-555-0101",
			},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name: "Missing username",
			requestBody: map[string]string{
				"email":    "nobody@example.com",
				"password": "Sturdy-pass1",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  true,
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"username": "nopass",
				"email":    "nopass@example.com",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  true,
		},
		{
			name: "Weak password",
			requestBody: map[string]string{
				"username": "weakpass",
				"email":    "weak@example.com",
				"password": "short",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  true,
		},
		{
			name: "Bad email",
			requestBody: map[string]string{
				"username": "bademail",
				"email":    "not-an-email",
				"password": "Sturdy-pass1",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  true,
		},
		{
			name: "Duplicate username",
			requestBody: map[string]string{
				"username": "sam_birky",
				"email":    "other@example.com",
				"password": "Sturdy-pass1",
			},
			expectedStatus: fiber.StatusConflict,
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doReq(t, app, jsonReq(t, http.MethodPost, "/register", tt.requestBody))
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var response map[string]any
			decodeBody(t, resp, &response)

			if tt.expectedError {
				assert.NotNil(t, response["message"])
			} else {
				assert.NotNil(t, response["token"])
				assert.NotNil(t, response["user"])
				assert.NotNil(t, response["organizer"])
			}
		})
	}
}

func TestRegisterCreatesOrganizerRow(t *testing.T) {
	app, srv := newTestApp(t)
	auth := registerOrganizer(t, app, "orga")

	organizer, err := srv.organizerRepo.GetByUserID(context.Background(), auth.UserID)
	require.NoError(t, err)
	assert.Equal(t, auth.OrganizerID, organizer.ID)
	assert.Equal(t, "615-555-0100", organizer.PhoneNumber)
	assert.True(t, organizer.User.IsActive)
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	registerOrganizer(t, app, "loginuser")

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
		expectedError  bool
	}{
		{
			name: "Valid login",
			requestBody: map[string]string{
				"username": "loginuser",
				"password": "Sturdy-pass1",
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "Wrong password",
			requestBody: map[string]string{
				"username": "loginuser",
				"password": "wrong-password1",
			},
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  true,
		},
		{
			name: "Unknown user",
			requestBody: map[string]string{
				"username": "nobody",
				"password": "Sturdy-pass1",
			},
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  true,
		},
		{
			name:           "Missing credentials",
			requestBody:    map[string]string{},
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doReq(t, app, jsonReq(t, http.MethodPost, "/login", tt.requestBody))
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var response map[string]any
			decodeBody(t, resp, &response)

			if tt.expectedError {
				assert.NotNil(t, response["message"])
			} else {
				assert.NotNil(t, response["token"])
				assert.NotNil(t, response["user"])
			}
		})
	}
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	app, _ := newTestApp(t)
	auth := registerOrganizer(t, app, "deactivated")

	// Soft-deactivate through the organizers endpoint
	resp := doReq(t, app, authReq(t, http.MethodPut, organizerPath(auth.OrganizerID), auth.Token, nil))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doReq(t, app, jsonReq(t, http.MethodPost, "/login", map[string]string{
		"username": "deactivated",
		"password": "Sturdy-pass1",
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestObtainAuthToken(t *testing.T) {
	app, _ := newTestApp(t)
	registerOrganizer(t, app, "tokenuser")

	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api-token-auth", map[string]string{
		"username": "tokenuser",
		"password": "Sturdy-pass1",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, body, "user")

	// The issued token must pass the auth gateway
	token, _ := body["token"].(string)
	resp = doReq(t, app, authReq(t, http.MethodGet, "/items", token, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Missing token", token: ""},
		{name: "Garbage token", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doReq(t, app, authReq(t, http.MethodGet, "/items", tt.token, nil))
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var response map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
			_ = resp.Body.Close()
			assert.NotNil(t, response["message"])
		})
	}
}
