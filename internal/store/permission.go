package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
)

// PermissionStore defines the interface for the discretionary access table.
// The (grantee, task) pair is the primary key: at most one row exists per
// pair, and Upsert must preserve that invariant under concurrent grants.
type PermissionStore interface {
	// Upsert creates the permission row if absent or overwrites its access
	// mode if present, atomically with respect to the pair uniqueness
	// invariant (last-committed-wins on the mode).
	// Returns ErrInvalidEntity if the grantee or task does not exist.
	Upsert(ctx context.Context, perm *domain.Permission) error

	// Get retrieves the permission row for the given (grantee, task) pair.
	// Returns ErrPermissionNotFound if no row exists.
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Permission, error)

	// Delete removes the permission row for the given (grantee, task) pair.
	// Returns ErrPermissionNotFound if no row exists; revoking a
	// never-granted permission is an error, not a no-op.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a new PermissionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PermissionStore
}
