package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/service"
	"github.com/jstanier/taskboard-api/internal/service/auth"
	"github.com/jstanier/taskboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"service task not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid ID", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid task status", domain.ErrInvalidTaskStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped sentinel still maps",
			fmt.Errorf("listing failed: %w", store.ErrTaskNotFound),
			http.StatusNotFound,
		},
		{
			"service error wrapper still maps",
			&service.ServiceError{Operation: "get_task", Message: "failed", Err: store.ErrTaskNotFound},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid credentials"},
		{"task not found", service.ErrTaskNotFound, "Task not found"},
		{"username taken", service.ErrUsernameTaken, "Username already exists"},
		{"invalid task status", domain.ErrInvalidTaskStatus, "Invalid task status"},
		{
			"internal details never leak",
			errors.New("pq: connection refused at 10.0.0.5:5432"),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantMsg, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("required field", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(RegisterRequest{Password: "password1234567"})
		assert.Equal(t, "Invalid Username: required field", SanitizeValidationError(err))
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(RegisterRequest{Username: "abc", Password: "password1234567"})
		assert.Equal(t, "Invalid Username: too short", SanitizeValidationError(err))
	})

	t.Run("oneof", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(UpdateTaskStatusRequest{Status: "CANCELLED"})
		assert.Equal(t, "Invalid Status: invalid value", SanitizeValidationError(err))
	})

	t.Run("non validator error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
