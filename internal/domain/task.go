package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrEmptyTaskID     = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwner  = errors.New("task owner ID cannot be empty")
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrInvalidTaskDate = errors.New("task date must be in YYYY-MM-DD format")
)

// DateLayout is the calendar-day format tasks are keyed by. Dates are stored
// as strings, matching the persisted representation.
const DateLayout = "2006-01-02"

// Task is a unit of work active on a single calendar day. Incomplete tasks
// are carried forward to the next day by the rollover evaluator; completed
// tasks are carried forward too, with their completion flag reset.
type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a new incomplete Task owned by userID, active on the given
// date. It generates a new UUID and sets the timestamps.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, date string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Date:      date,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns a sentinel error for the first field that fails.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidTaskDate
	}

	return nil
}

// IsOwnedBy reports whether the task belongs to the given user.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
