package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed credential; plaintext passwords never reach the store.
	// Returns ErrLoginExists if the login is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByLogin retrieves a user by their unique login.
	// Returns ErrUserNotFound if the user does not exist.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)

	// Delete removes a user from the store by their ID. Permission rows
	// where the user is the grantee are removed in the same atomic unit
	// (cascade-on-delete). Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
