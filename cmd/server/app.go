package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskgrid/taskgrid-api/internal/config"
	"github.com/taskgrid/taskgrid-api/internal/platform/postgres"
	"github.com/taskgrid/taskgrid-api/internal/service"
	"github.com/taskgrid/taskgrid-api/internal/service/auth"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	taskStore       store.TaskStore
	permissionStore store.PermissionStore

	// Service interfaces
	jwtService        auth.JWTService
	passwordHasher    auth.PasswordHasher
	passwordVerifier  auth.PasswordVerifier
	taskService       service.TaskService
	permissionService service.PermissionService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized")

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.permissionStore = postgres.NewPostgresPermissionStore(db, logger)

	txRunner := store.NewSQLTxRunner(db)

	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.permissionStore,
		txRunner,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	app.permissionService, err = service.NewPermissionService(
		app.taskStore,
		app.userStore,
		app.permissionStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize permission service: %w", err)
	}

	logger.Info("Application dependencies initialized")
	return app, nil
}

// cleanup releases resources held by the application.
// It is called during graceful shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
