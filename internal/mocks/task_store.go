package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/daylist/daylist-api/internal/domain"
	"github.com/daylist/daylist-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. The default
// implementation keeps tasks in a map and preserves insertion order for
// FindByOwnerAndDate, mirroring the real store's ordering.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn             func(ctx context.Context, task *domain.Task) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByOwnerAndDateFn func(ctx context.Context, ownerID uuid.UUID, date string) ([]*domain.Task, error)
	UpdateFn             func(ctx context.Context, task *domain.Task) error
	DeleteFn             func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Tasks       map[uuid.UUID]*domain.Task
	order       map[uuid.UUID]int
	nextOrder   int
	CreateError error
	UpdateError error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
		order: make(map[uuid.UUID]int),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	m.order[task.ID] = m.nextOrder
	m.nextOrder++
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// FindByOwnerAndDate implements the TaskStore interface
func (m *MockTaskStore) FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date string) ([]*domain.Task, error) {
	if m.FindByOwnerAndDateFn != nil {
		return m.FindByOwnerAndDateFn(ctx, ownerID, date)
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID == ownerID && task.Date == date {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return m.order[tasks[i].ID] < m.order[tasks[j].ID]
	})

	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	delete(m.order, id)
	return nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}
