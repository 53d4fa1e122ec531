package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daylist/daylist-api/internal/domain"
	"github.com/daylist/daylist-api/internal/platform/logger"
	"github.com/daylist/daylist-api/internal/service/rollover"
	"github.com/daylist/daylist-api/internal/store"
	"github.com/google/uuid"
)

// TaskService implements the task lifecycle: add, edit, complete, delete,
// and the rollover-backed list view. Every operation that resolves a task by
// ID verifies the acting user owns it and returns ErrTaskNotOwned otherwise.
type TaskService struct {
	taskStore store.TaskStore
	evaluator *rollover.Evaluator
	logger    *slog.Logger
}

// NewTaskService creates a TaskService over the given store and rollover
// evaluator. If logger is nil, the default logger is used.
func NewTaskService(
	taskStore store.TaskStore,
	evaluator *rollover.Evaluator,
	log *slog.Logger,
) *TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskService{
		taskStore: taskStore,
		evaluator: evaluator,
		logger:    log.With(slog.String("component", "task_service")),
	}
}

// List runs the rollover evaluator for the acting user and returns the
// resulting visible list together with the day it was evaluated for.
func (s *TaskService) List(ctx context.Context, actor uuid.UUID) ([]*domain.Task, string, error) {
	return s.evaluator.Evaluate(ctx, actor)
}

// Add creates a new incomplete task for the acting user, dated today.
// Returns a domain validation error if the title is empty.
func (s *TaskService) Add(ctx context.Context, actor uuid.UUID, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(actor, title, s.evaluator.Today())
	if err != nil {
		log.Warn("invalid task data",
			slog.String("error", err.Error()),
			slog.String("user_id", actor.String()))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	return task, nil
}

// Edit replaces the title of one of the acting user's tasks. Date and
// completion are not touched.
// Returns store.ErrTaskNotFound if the task does not exist and
// ErrTaskNotOwned if it belongs to another user.
func (s *TaskService) Edit(
	ctx context.Context,
	actor uuid.UUID,
	taskID uuid.UUID,
	newTitle string,
) (*domain.Task, error) {
	task, err := s.getOwned(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(newTitle)
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to edit task: %w", err)
	}

	return task, nil
}

// Complete marks one of the acting user's tasks as completed. The operation
// is not reversible: there is no un-complete, only the nightly reset applied
// by rollover.
// Returns store.ErrTaskNotFound if the task does not exist and
// ErrTaskNotOwned if it belongs to another user.
func (s *TaskService) Complete(
	ctx context.Context,
	actor uuid.UUID,
	taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.getOwned(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = true
	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return task, nil
}

// Delete permanently removes one of the acting user's tasks.
// Returns store.ErrTaskNotFound if the task does not exist and
// ErrTaskNotOwned if it belongs to another user.
func (s *TaskService) Delete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	if _, err := s.getOwned(ctx, actor, taskID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// getOwned loads a task and verifies the actor owns it.
func (s *TaskService) getOwned(
	ctx context.Context,
	actor uuid.UUID,
	taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsOwnedBy(actor) {
		log.Warn("user does not own task",
			slog.String("user_id", actor.String()),
			slog.String("task_id", taskID.String()),
			slog.String("owner_id", task.UserID.String()))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}
