package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/service"
)

// mockAuthService is a mock implementation of the AuthService interface
type mockAuthService struct {
	registerFn     func(ctx context.Context, username, password string) (*domain.User, error)
	authenticateFn func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAuthService) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Authenticate(
	ctx context.Context,
	username, password string,
) (string, error) {
	return m.authenticateFn(ctx, username, password)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		serviceErr error
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "password1234567",
			},
			serviceErr: service.ErrUsernameTaken,
			wantStatus: http.StatusConflict,
		},
		{
			name: "username too short",
			payload: map[string]interface{}{
				"username": "abc",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "taskuser",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "password1234567",
			},
			serviceErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			serviceCalled := false
			authService := &mockAuthService{
				registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
					serviceCalled = true
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					user, err := domain.NewUser(username, password)
					require.NoError(t, err)
					return user, nil
				},
			}
			handler := NewAuthHandler(authService, discardLogger())

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.True(t, serviceCalled)
				assert.Empty(t, rr.Body.String(), "successful registration has no body")
			}

			if tt.wantStatus == http.StatusBadRequest {
				assert.False(t, serviceCalled, "validation failures must not reach the service")
			}
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(&mockAuthService{}, discardLogger())

		req := httptest.NewRequest(
			http.MethodPost,
			"/auth/register",
			bytes.NewReader([]byte("{not json")),
		)
		rr := httptest.NewRecorder()

		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		token      string
		serviceErr error
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid credentials",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "password1234567",
			},
			token:      "signed.jwt.token",
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "invalid credentials",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "wrongpassword",
			},
			serviceErr: service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "taskuser",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			payload: map[string]interface{}{
				"username": "taskuser",
				"password": "password1234567",
			},
			serviceErr: errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authService := &mockAuthService{
				authenticateFn: func(ctx context.Context, username, password string) (string, error) {
					return tt.token, tt.serviceErr
				},
			}
			handler := NewAuthHandler(authService, discardLogger())

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantToken {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.token, resp.AccessToken)
			}
		})
	}
}
