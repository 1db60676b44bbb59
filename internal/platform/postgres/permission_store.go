package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

// PostgresPermissionStore implements the store.PermissionStore interface
// using a PostgreSQL database as the storage backend.
//
// The permissions table's primary key is the (access_user_id, task_id)
// pair, which makes the pair-uniqueness invariant a schema property rather
// than application logic.
type PostgresPermissionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPermissionStore creates a new PostgreSQL implementation of the
// PermissionStore interface. If logger is nil, a default logger will be used.
func NewPostgresPermissionStore(db store.DBTX, logger *slog.Logger) *PostgresPermissionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPermissionStore{
		db:     db,
		logger: logger.With(slog.String("component", "permission_store")),
	}
}

// Ensure PostgresPermissionStore implements store.PermissionStore interface
var _ store.PermissionStore = (*PostgresPermissionStore)(nil)

// Upsert implements store.PermissionStore.Upsert
// A single ON CONFLICT statement keeps the insert-or-replace atomic:
// concurrent grants for the same pair serialize on the primary key and the
// last committed mode wins.
// Returns store.ErrInvalidEntity if the grantee or task does not exist.
func (s *PostgresPermissionStore) Upsert(ctx context.Context, perm *domain.Permission) error {
	if err := perm.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO permissions (access_user_id, task_id, access_mode)
		VALUES ($1, $2, $3)
		ON CONFLICT (access_user_id, task_id)
		DO UPDATE SET access_mode = EXCLUDED.access_mode`

	_, err := s.db.ExecContext(ctx, query, perm.UserID, perm.TaskID, int(perm.Mode))
	if err != nil {
		return MapError(err)
	}

	return nil
}

// Get implements store.PermissionStore.Get
// Returns store.ErrPermissionNotFound if no row exists for the pair.
func (s *PostgresPermissionStore) Get(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Permission, error) {
	query := `
		SELECT access_user_id, task_id, access_mode
		FROM permissions
		WHERE access_user_id = $1 AND task_id = $2`

	var perm domain.Permission
	var mode int
	err := s.db.QueryRowContext(ctx, query, userID, taskID).Scan(
		&perm.UserID,
		&perm.TaskID,
		&mode,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrPermissionNotFound
		}
		return nil, MapError(err)
	}
	perm.Mode = domain.AccessMode(mode)

	return &perm, nil
}

// Delete implements store.PermissionStore.Delete
// Removing an absent row reports store.ErrPermissionNotFound; a revocation
// is never a silent no-op.
func (s *PostgresPermissionStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	query := `DELETE FROM permissions WHERE access_user_id = $1 AND task_id = $2`

	result, err := s.db.ExecContext(ctx, query, userID, taskID)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrPermissionNotFound)
}

// WithTx implements store.PermissionStore.WithTx
// It returns a new PermissionStore that executes against the provided
// transaction.
func (s *PostgresPermissionStore) WithTx(tx *sql.Tx) store.PermissionStore {
	return &PostgresPermissionStore{
		db:     tx,
		logger: s.logger,
	}
}
