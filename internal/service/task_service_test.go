package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylist/daylist-api/internal/domain"
	"github.com/daylist/daylist-api/internal/mocks"
	"github.com/daylist/daylist-api/internal/service/rollover"
	"github.com/daylist/daylist-api/internal/store"
)

const testToday = "2025-06-02"

// newTestService builds a TaskService over a mock store with a fixed clock
// and no real transactions.
func newTestService(t *testing.T) (*TaskService, *mocks.MockTaskStore) {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	evaluator := rollover.NewTestEvaluator(
		taskStore,
		func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) },
	)
	return NewTaskService(taskStore, evaluator, nil), taskStore
}

func TestTaskServiceAddAndList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, testToday, task.Date)
	assert.False(t, task.Completed)

	visible, day, err := svc.List(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, testToday, day)
	require.Len(t, visible, 1)
	assert.Equal(t, task.ID, visible[0].ID)
}

func TestTaskServiceAddRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
}

func TestTaskServiceEdit(t *testing.T) {
	svc, taskStore := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)
	task.Completed = true
	require.NoError(t, taskStore.Update(ctx, task))

	edited, err := svc.Edit(ctx, actor, task.ID, "Buy oat milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", edited.Title)
	assert.Equal(t, testToday, edited.Date, "edit must not change the date")
	assert.True(t, edited.Completed, "edit must not change completion")
}

func TestTaskServiceEditRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, actor, task.ID, "")
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)

	// Whitespace-only titles are rejected the same as on Add.
	_, err = svc.Edit(ctx, actor, task.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
}

func TestTaskServiceEditTrimsTitle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, actor, task.ID, "  Buy oat milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", edited.Title)
}

func TestTaskServiceComplete(t *testing.T) {
	svc, taskStore := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, actor, task.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	stored, err := taskStore.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestTaskServiceDelete(t *testing.T) {
	svc, taskStore := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	task, err := svc.Add(ctx, actor, "Buy milk")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, actor, task.ID))

	_, err = taskStore.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskServiceOwnershipEnforced(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	task, err := svc.Add(ctx, owner, "Buy milk")
	require.NoError(t, err)

	_, err = svc.Edit(ctx, intruder, task.ID, "Hijacked")
	assert.ErrorIs(t, err, ErrTaskNotOwned)

	_, err = svc.Complete(ctx, intruder, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotOwned)

	err = svc.Delete(ctx, intruder, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotOwned)

	// ErrTaskNotOwned wraps the generic authorization sentinel.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// The owner still sees the untouched task.
	visible, _, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Buy milk", visible[0].Title)
}

func TestTaskServiceMissingTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	actor := uuid.New()

	_, err := svc.Edit(ctx, actor, uuid.New(), "Anything")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = svc.Complete(ctx, actor, uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.Delete(ctx, actor, uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
