package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jstanier/taskboard-api/internal/api/middleware"
	"github.com/jstanier/taskboard-api/internal/api/shared"
	"github.com/jstanier/taskboard-api/internal/domain"
)

// getAuthenticatedUser extracts the resolved user placed in the request
// context by the auth middleware. It writes a 401 response and returns
// false if no user is present.
func getAuthenticatedUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return user, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// Returns a zero UUID and an error if the parameter is missing or invalid.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
