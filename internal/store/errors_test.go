package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorsMatchSentinel(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)

	wrapped := fmt.Errorf("failed to load task: %w", ErrTaskNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
}

func TestDuplicateErrorsMatchSentinel(t *testing.T) {
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	wrapped := fmt.Errorf("failed to create user: %w", ErrEmailExists)
	assert.True(t, IsDuplicateError(wrapped))
	assert.False(t, IsDuplicateError(ErrTaskNotFound))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.NotErrorIs(t, ErrInvalidEntity, ErrNotFound)
	assert.NotErrorIs(t, ErrTransactionFailed, ErrDuplicate)
}
