package adapters

import "context"

// DBAdapter defines the database operations needed by the game store.
// Queries use positional placeholders ($1, $2, ...) with separate args.
type DBAdapter interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)

	// InTx runs fn inside a transaction. The transaction is committed when fn returns nil
	// and rolled back otherwise. Calling InTx on a transaction adapter reuses the transaction.
	InTx(ctx context.Context, fn func(tx DBAdapter) error) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
