package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jstanier/taskboard-api/internal/domain"
)

// TaskFilter restricts the result set of FindByUser. Both fields are
// optional and combine with logical AND.
type TaskFilter struct {
	// Status restricts results to tasks with exactly this status.
	Status domain.TaskStatus

	// Search restricts results to tasks whose title or description contains
	// this term, matched case-insensitively as a substring.
	Search string
}

// TaskStore defines the interface for task data persistence.
// Every read and write is scoped to the owning user; a task that exists
// but belongs to someone else is indistinguishable from one that does not
// exist at all.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByIDForUser retrieves the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if no such task is owned by that user.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// FindByUser retrieves all tasks owned by userID matching the filter,
	// most recently created first. An empty result is not an error.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// UpdateStatusForUser sets the status of the task with the given ID owned
	// by userID. Returns ErrTaskNotFound if zero rows were affected.
	UpdateStatusForUser(ctx context.Context, id, userID uuid.UUID, status domain.TaskStatus) error

	// DeleteForUser removes the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if zero rows were affected.
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
