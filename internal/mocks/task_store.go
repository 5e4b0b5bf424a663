package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, task *domain.Task) error

	// GetByIDForUserFn allows test cases to mock the GetByIDForUser behavior
	GetByIDForUserFn func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// FindByUserFn allows test cases to mock the FindByUser behavior
	FindByUserFn func(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)

	// UpdateStatusForUserFn allows test cases to mock the UpdateStatusForUser behavior
	UpdateStatusForUserFn func(ctx context.Context, id, userID uuid.UUID, status domain.TaskStatus) error

	// DeleteForUserFn allows test cases to mock the DeleteForUser behavior
	DeleteForUserFn func(ctx context.Context, id, userID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

// GetByIDForUser implements the store.TaskStore interface
func (m *MockTaskStore) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*domain.Task, error) {
	if m.GetByIDForUserFn != nil {
		return m.GetByIDForUserFn(ctx, id, userID)
	}
	return m.Task, m.Err
}

// FindByUser implements the store.TaskStore interface
func (m *MockTaskStore) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.FindByUserFn != nil {
		return m.FindByUserFn(ctx, userID, filter)
	}
	return m.Tasks, m.Err
}

// UpdateStatusForUser implements the store.TaskStore interface
func (m *MockTaskStore) UpdateStatusForUser(
	ctx context.Context,
	id, userID uuid.UUID,
	status domain.TaskStatus,
) error {
	if m.UpdateStatusForUserFn != nil {
		return m.UpdateStatusForUserFn(ctx, id, userID, status)
	}
	return m.Err
}

// DeleteForUser implements the store.TaskStore interface
func (m *MockTaskStore) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, id, userID)
	}
	return m.Err
}

// WithTx implements the store.TaskStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
