package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/store"
)

// TaskService provides task operations scoped to the authenticated user.
// Every method takes the acting user; ownership scoping happens in the
// store queries, never in the handlers.
type TaskService interface {
	// ListTasks returns the user's tasks matching the filter, newest first.
	// An empty result is a valid outcome, not an error.
	ListTasks(ctx context.Context, user *domain.User, filter store.TaskFilter) ([]*domain.Task, error)

	// GetTask fetches a single task by ID. Returns ErrTaskNotFound when no
	// task with that ID is owned by the user, including when the ID exists
	// but belongs to someone else.
	GetTask(ctx context.Context, user *domain.User, id uuid.UUID) (*domain.Task, error)

	// CreateTask creates a task with status OPEN owned by the user and
	// returns the persisted record including the generated ID.
	CreateTask(ctx context.Context, user *domain.User, title, description string) (*domain.Task, error)

	// UpdateTaskStatus sets the status of an owned task and returns the
	// updated record. Only enum membership is validated; any status may be
	// set from any other. Returns ErrTaskNotFound per GetTask semantics.
	UpdateTaskStatus(ctx context.Context, user *domain.User, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask deletes an owned task. Returns ErrTaskNotFound when zero
	// rows were affected.
	DeleteTask(ctx context.Context, user *domain.User, id uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// ListTasks returns the user's tasks matching the filter.
func (s *TaskServiceImpl) ListTasks(
	ctx context.Context,
	user *domain.User,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindByUser(ctx, user.ID, filter)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", user.ID,
			"status_filter", string(filter.Status),
			"search_filter", filter.Search)
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}

	s.logger.Debug("listed tasks",
		"user_id", user.ID,
		"count", len(tasks))
	return tasks, nil
}

// GetTask fetches a single owned task by ID.
func (s *TaskServiceImpl) GetTask(
	ctx context.Context,
	user *domain.User,
	id uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByIDForUser(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found",
				"task_id", id,
				"user_id", user.ID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to get task",
			"error", err,
			"task_id", id,
			"user_id", user.ID)
		return nil, NewServiceError("get_task", "failed to get task", err)
	}

	return task, nil
}

// CreateTask creates a new task with status OPEN owned by the user.
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	user *domain.User,
	title, description string,
) (*domain.Task, error) {
	task, err := domain.NewTask(user.ID, title, description)
	if err != nil {
		s.logger.Debug("invalid task data during create",
			"error", err,
			"user_id", user.ID)
		return nil, NewServiceError("create_task", "invalid task data", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", user.ID)
		return nil, NewServiceError("create_task", "failed to create task", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"user_id", user.ID)
	return task, nil
}

// UpdateTaskStatus sets the status of an owned task and returns it.
func (s *TaskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	user *domain.User,
	id uuid.UUID,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if !domain.IsValidTaskStatus(status) {
		return nil, NewServiceError(
			"update_task_status",
			"invalid task status",
			domain.ErrInvalidTaskStatus,
		)
	}

	// Ownership and existence check first; the update itself is scoped by
	// (id, user_id) as well, so a concurrent delete still yields not-found.
	if _, err := s.GetTask(ctx, user, id); err != nil {
		return nil, err
	}

	err := s.taskStore.UpdateStatusForUser(ctx, id, user.ID, status)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to update task status",
			"error", err,
			"task_id", id,
			"user_id", user.ID,
			"status", string(status))
		return nil, NewServiceError("update_task_status", "failed to update status", err)
	}

	task, err := s.GetTask(ctx, user, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("task status updated",
		"task_id", id,
		"user_id", user.ID,
		"status", string(status))
	return task, nil
}

// DeleteTask deletes an owned task.
func (s *TaskServiceImpl) DeleteTask(
	ctx context.Context,
	user *domain.User,
	id uuid.UUID,
) error {
	err := s.taskStore.DeleteForUser(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for delete",
				"task_id", id,
				"user_id", user.ID)
			return ErrTaskNotFound
		}
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", id,
			"user_id", user.ID)
		return NewServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted",
		"task_id", id,
		"user_id", user.ID)
	return nil
}
