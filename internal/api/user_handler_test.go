package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/mocks"
	"github.com/fintrack/fintrack-api/internal/service"
	"github.com/fintrack/fintrack-api/internal/store"
)

func postJSON(t *testing.T, handler http.HandlerFunc, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestUserHandlerRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "mypassword123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "username too short",
			payload: map[string]interface{}{
				"username": "ab",
				"email":    "alice@example.com",
				"password": "mypassword123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"username": "alice",
				"email":    "not-an-email",
				"password": "mypassword123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"email":    "alice@example.com",
				"password": "mypassword123",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(mocks.NewMockUserService())

			recorder := postJSON(t, handler.Register, "POST", "/api/v1/users/register", tt.payload)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, int64(1), resp.UserID)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, "alice@example.com", resp.Email)
			} else {
				var resp shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Detail)
			}
		})
	}
}

func TestUserHandlerRegisterDuplicate(t *testing.T) {
	t.Parallel()

	userService := mocks.NewMockUserService()
	userService.RegisterErr = store.ErrUsernameExists
	handler := NewUserHandler(userService)

	recorder := postJSON(t, handler.Register, "POST", "/api/v1/users/register", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "mypassword123",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Username already registered", resp.Detail)
}

func TestUserHandlerRegisterNeverEchoesPassword(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(mocks.NewMockUserService())

	recorder := postJSON(t, handler.Register, "POST", "/api/v1/users/register", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "mypassword123",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "mypassword123")
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestUserHandlerLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		loginErr   error
		wantStatus int
		wantDetail string
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "mypassword123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong credentials",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "wrongpassword",
			},
			loginErr:   service.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Incorrect username or password",
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "alice",
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Incorrect username or password",
		},
		{
			name: "store failure",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "mypassword123",
			},
			loginErr:   errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userService := mocks.NewMockUserService()
			userService.LoginErr = tt.loginErr
			handler := NewUserHandler(userService)

			recorder := postJSON(t, handler.Login, "GET", "/api/v1/user/login", tt.payload)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp MessageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Login successful", resp.Message)
			} else {
				var resp shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tt.wantDetail, resp.Detail)
			}
		})
	}
}

func TestUserHandlerListUsers(t *testing.T) {
	t.Parallel()

	userService := mocks.NewMockUserService()
	handler := NewUserHandler(userService)

	for _, username := range []string{"alice", "bob"} {
		recorder := postJSON(t, handler.Register, "POST", "/api/v1/users/register", map[string]interface{}{
			"username": username,
			"email":    username + "@example.com",
			"password": "mypassword123",
		})
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	recorder := httptest.NewRecorder()
	handler.ListUsers(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []UserResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].Username)
	assert.Equal(t, "bob", resp[1].Username)
}
