package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()
	today := time.Now().UTC().Format(DateLayout)

	task, err := NewTask(ownerID, "Buy milk", today)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, task.UserID)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected title Buy milk, got %s", task.Title)
	}

	if task.Date != today {
		t.Errorf("Expected date %s, got %s", today, task.Date)
	}

	if task.Completed {
		t.Error("Expected new task to be incomplete")
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Title whitespace is trimmed
	task, err = NewTask(ownerID, "  Water plants  ", today)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Title != "Water plants" {
		t.Errorf("Expected trimmed title, got %q", task.Title)
	}

	// Test invalid owner
	_, err = NewTask(uuid.Nil, "Buy milk", today)
	if err != ErrEmptyTaskOwner {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskOwner, err)
	}

	// Test invalid title
	_, err = NewTask(ownerID, "   ", today)
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	// Test invalid dates
	for _, date := range []string{"", "2025-13-01", "01-02-2025", "2025-1-2", "not-a-date"} {
		if _, err := NewTask(ownerID, "Buy milk", date); err != ErrInvalidTaskDate {
			t.Errorf("Expected error %v for date %q, got %v", ErrInvalidTaskDate, date, err)
		}
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Buy milk",
		Date:   "2025-06-01",
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskOwner {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskOwner, err)
	}

	invalidTask = validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	invalidTask = validTask
	invalidTask.Date = "June 1st"
	if err := invalidTask.Validate(); err != ErrInvalidTaskDate {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskDate, err)
	}
}

func TestTaskIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	task := Task{
		ID:     uuid.New(),
		UserID: ownerID,
		Title:  "Buy milk",
		Date:   "2025-06-01",
	}

	if !task.IsOwnedBy(ownerID) {
		t.Error("Expected task to be owned by its owner")
	}

	if task.IsOwnedBy(uuid.New()) {
		t.Error("Expected task not to be owned by another user")
	}
}
