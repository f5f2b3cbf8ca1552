package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Query executes a query using the sql.DB and returns wrapped rows.
func (s *SQLAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	return stdQuery(ctx, s.db, query, args)
}

// Exec executes a statement using the sql.DB and returns wrapped result.
func (s *SQLAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return stdExec(ctx, s.db, query, args)
}

// InTx runs fn inside a database/sql transaction.
func (s *SQLAdapter) InTx(ctx context.Context, fn func(tx DBAdapter) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	return runStdTx(tx, fn)
}
