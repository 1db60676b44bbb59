package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the SQL execution surface shared by *sql.DB and *sql.Tx.
// Stores accept it so the same queries run against a plain connection or
// inside a transaction started by a TxRunner (task creation stores the
// task and the creator's self-permission through one *sql.Tx).
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
