package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daylist/daylist-api/internal/domain"
	"github.com/daylist/daylist-api/internal/service"
	"github.com/daylist/daylist-api/internal/service/auth"
	"github.com/daylist/daylist-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, expected: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "invalid refresh token", err: auth.ErrInvalidRefreshToken, expected: http.StatusUnauthorized},
		{name: "wrong token type", err: auth.ErrWrongTokenType, expected: http.StatusUnauthorized},
		{name: "task not owned", err: service.ErrTaskNotOwned, expected: http.StatusForbidden},
		{name: "generic unauthorized", err: domain.ErrUnauthorized, expected: http.StatusForbidden},
		{name: "task not found", err: store.ErrTaskNotFound, expected: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrTaskNotFound), expected: http.StatusNotFound},
		{name: "duplicate email", err: store.ErrEmailExists, expected: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, expected: http.StatusBadRequest},
		{name: "empty title", err: domain.ErrEmptyTaskTitle, expected: http.StatusBadRequest},
		{name: "bad date", err: domain.ErrInvalidTaskDate, expected: http.StatusBadRequest},
		{name: "short password", err: domain.ErrPasswordTooShort, expected: http.StatusBadRequest},
		{name: "validation error type", err: domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), expected: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: "An unexpected error occurred"},
		{name: "task not owned", err: service.ErrTaskNotOwned, expected: "You do not own this task"},
		{name: "task not found", err: store.ErrTaskNotFound, expected: "Task not found"},
		{name: "duplicate email", err: store.ErrEmailExists, expected: "Email already exists"},
		{name: "invalid token", err: auth.ErrInvalidToken, expected: "Invalid token"},
		{name: "unknown error hides detail", err: errors.New("pq: connection refused host=10.0.0.5"), expected: "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}

	// Domain validation messages are safe to surface verbatim.
	assert.Equal(t, domain.ErrEmptyTaskTitle.Error(), GetSafeErrorMessage(domain.ErrEmptyTaskTitle))
}

func TestSanitizeValidationError(t *testing.T) {
	handlerErr := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag")
	assert.Equal(t, "invalid Email: required field", SanitizeValidationError(handlerErr))

	assert.Equal(t, "validation failed", SanitizeValidationError(errors.New("something else")))
}
