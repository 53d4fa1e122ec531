package service

import (
	"fmt"

	"github.com/daylist/daylist-api/internal/domain"
)

// Service-level errors
var (
	// ErrTaskNotOwned is returned when a user attempts to operate on a task
	// owned by someone else. Every task-ID-based operation enforces this.
	ErrTaskNotOwned = fmt.Errorf("%w: task belongs to another user", domain.ErrUnauthorized)
)
