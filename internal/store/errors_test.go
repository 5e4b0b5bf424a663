package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundHierarchy(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("query failed: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrUsernameExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}

func TestDuplicateHierarchy(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert failed: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrTaskNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	inner := ErrTaskNotFound
	err := NewStoreError("task", "get", "lookup failed", inner)

	assert.Contains(t, err.Error(), "get operation on task failed")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	var storeErr *StoreError
	assert.ErrorAs(t, error(err), &storeErr)

	bare := NewStoreError("user", "create", "no wrapped error", nil)
	assert.Equal(t, "create operation on user failed: no wrapped error", bare.Error())
}
