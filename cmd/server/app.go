package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/daylist/daylist-api/internal/api"
	authmiddleware "github.com/daylist/daylist-api/internal/api/middleware"
	"github.com/daylist/daylist-api/internal/config"
	"github.com/daylist/daylist-api/internal/platform/postgres"
	"github.com/daylist/daylist-api/internal/service"
	"github.com/daylist/daylist-api/internal/service/auth"
	"github.com/daylist/daylist-api/internal/service/rollover"
)

// application holds the fully wired dependency graph for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	authHandler    *api.AuthHandler
	taskHandler    *api.TaskHandler
	authMiddleware *authmiddleware.AuthMiddleware
}

// newApplication wires stores, services and handlers on top of a live
// database connection.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	bcryptVerifier := auth.NewBcryptVerifier()

	evaluator := rollover.NewEvaluator(db, taskStore, log)
	taskService := service.NewTaskService(taskStore, evaluator, log)

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		authHandler:    api.NewAuthHandler(userStore, jwtService, bcryptVerifier, bcryptVerifier),
		taskHandler:    api.NewTaskHandler(taskService),
		authMiddleware: authmiddleware.NewAuthMiddleware(jwtService),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("Failed to close database connection", "error", err)
	}
}
