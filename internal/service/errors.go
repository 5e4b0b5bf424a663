// Package service contains the application services that implement the
// business operations exposed by the API layer.
package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors returned by the services.
var (
	// ErrUsernameTaken indicates a registration attempt with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials indicates a failed sign-in. An unknown username
	// and a wrong password both surface as this same error so callers cannot
	// probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotFound indicates that the task does not exist or is not owned
	// by the requesting user; the two cases are deliberately identical.
	ErrTaskNotFound = errors.New("task not found")
)

// ServiceError wraps errors from the services with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "register", "list_tasks")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. Known sentinel errors are
// returned directly without wrapping so callers can match them with
// errors.Is.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrTaskNotFound) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
