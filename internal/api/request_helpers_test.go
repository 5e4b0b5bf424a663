package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstanier/taskboard-api/internal/domain"
)

func TestGetAuthenticatedUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the context user", func(t *testing.T) {
		t.Parallel()

		req := withUser(httptest.NewRequest(http.MethodGet, "/tasks", nil), authenticatedUser())
		rr := httptest.NewRecorder()

		user, ok := getAuthenticatedUser(rr, req)
		require.True(t, ok)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("writes 401 when absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		rr := httptest.NewRecorder()

		user, ok := getAuthenticatedUser(rr, req)
		assert.False(t, ok)
		assert.Nil(t, user)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetPathUUID(t *testing.T) {
	t.Parallel()

	newRequestWithParam := func(name, value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/tasks/"+value, nil)
		rctx := chi.NewRouteContext()
		if value != "" {
			rctx.URLParams.Add(name, value)
		}
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("valid UUID", func(t *testing.T) {
		t.Parallel()

		want := uuid.New()
		id, err := getPathUUID(newRequestWithParam("id", want.String()), "id")
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()

		_, err := getPathUUID(newRequestWithParam("id", ""), "id")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := getPathUUID(newRequestWithParam("id", "not-a-uuid"), "id")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}
