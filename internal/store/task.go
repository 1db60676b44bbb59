package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// The store performs no authorization; callers must have already obtained
// an Allowed verdict from the access decision before mutating.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update modifies an existing task's title and content.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. All permission rows
	// referencing the task are removed in the same atomic unit; a concurrent
	// reader never observes a deleted task with dangling permission rows.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListVisibleTo retrieves all tasks the given user holds a permission
	// row on. Because task creation stores a self-permission row for the
	// owner, this covers owned tasks as well with a single join.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
