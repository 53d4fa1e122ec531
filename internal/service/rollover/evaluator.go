// Package rollover implements the daily task rollover: every list view
// reconciles yesterday's tasks into today's list. Incomplete tasks carry
// forward unchanged; completed tasks carry forward with their completion
// flag reset, giving each day a fresh list.
package rollover

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/daylist/daylist-api/internal/domain"
	"github.com/daylist/daylist-api/internal/platform/logger"
	"github.com/daylist/daylist-api/internal/store"
	"github.com/google/uuid"
)

// Evaluator reconciles a user's stale tasks into today's list.
//
// The whole reconciliation runs in a single database transaction, so a crash
// mid-rollover never leaves a partially advanced set. Running it twice on the
// same calendar day is a no-op the second time: after the first run no task
// carries yesterday's date.
type Evaluator struct {
	taskStore store.TaskStore
	now       func() time.Time // Injectable for testing
	runTx     func(ctx context.Context, fn store.TxFn) error
	logger    *slog.Logger
}

// NewEvaluator creates a rollover Evaluator over the given task store.
// The db handle is used to open the per-evaluation transaction.
// If logger is nil, the default logger is used.
func NewEvaluator(db *sql.DB, taskStore store.TaskStore, log *slog.Logger) *Evaluator {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Evaluator{
		taskStore: taskStore,
		now:       time.Now,
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
		logger: log.With(slog.String("component", "rollover_evaluator")),
	}
}

// NewTestEvaluator returns an Evaluator with an injectable clock whose
// evaluation runs against the store directly, outside any database
// transaction. Intended for tests backed by an in-memory store.
func NewTestEvaluator(taskStore store.TaskStore, now func() time.Time) *Evaluator {
	e := NewEvaluator(nil, taskStore, nil)
	e.now = now
	e.runTx = func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	}
	return e
}

// Evaluate runs the rollover for ownerID and returns the resulting visible
// list for today as a single flat, ordered slice: today's existing tasks in
// insertion order, followed by the carried-forward stale tasks in their
// stored order. The returned day string is the "today" the evaluation used,
// so callers labeling the list never re-read the clock and disagree with the
// task dates across a midnight boundary.
//
// Today and yesterday are computed fresh from the wall clock on every call;
// only tasks dated exactly yesterday are touched. Older tasks are inert.
func (e *Evaluator) Evaluate(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, string, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	now := e.now().UTC()
	today := now.Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)

	log.Debug("running rollover",
		slog.String("user_id", ownerID.String()),
		slog.String("today", today),
		slog.String("yesterday", yesterday))

	var visible []*domain.Task

	err := e.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := e.storeFor(tx)

		current, err := taskStore.FindByOwnerAndDate(ctx, ownerID, today)
		if err != nil {
			return fmt.Errorf("failed to fetch today's tasks: %w", err)
		}

		stale, err := taskStore.FindByOwnerAndDate(ctx, ownerID, yesterday)
		if err != nil {
			return fmt.Errorf("failed to fetch yesterday's tasks: %w", err)
		}

		visible = make([]*domain.Task, 0, len(current)+len(stale))
		visible = append(visible, current...)

		for _, task := range stale {
			// Completed stale tasks reappear fresh: the flag resets.
			// Incomplete ones just carry forward.
			task.Completed = false
			task.Date = today

			if err := taskStore.Update(ctx, task); err != nil {
				return fmt.Errorf("failed to carry task %s forward: %w", task.ID, err)
			}
			visible = append(visible, task)
		}

		if len(stale) > 0 {
			log.Info("rolled over stale tasks",
				slog.String("user_id", ownerID.String()),
				slog.String("today", today),
				slog.Int("count", len(stale)))
		}
		return nil
	})
	if err != nil {
		log.Error("rollover failed",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, "", err
	}

	return visible, today, nil
}

// Today returns the current calendar day as stored on tasks.
func (e *Evaluator) Today() string {
	return e.now().UTC().Format(domain.DateLayout)
}

func (e *Evaluator) storeFor(tx *sql.Tx) store.TaskStore {
	if tx == nil {
		return e.taskStore
	}
	return e.taskStore.WithTx(tx)
}
