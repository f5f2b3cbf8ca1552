package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is implemented by both *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PGXAdapter implements DBAdapter for pgxpool.Pool.
type PGXAdapter struct {
	pool *pgxpool.Pool
}

// NewPGXAdapter creates a new PGX adapter.
func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{pool: pool}
}

// Query executes a query using the pgx pool and returns wrapped rows.
func (p *PGXAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	return pgxQuery(ctx, p.pool, query, args)
}

// Exec executes a statement using the pgx pool and returns wrapped result.
func (p *PGXAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return pgxExec(ctx, p.pool, query, args)
}

// InTx runs fn inside a pgx transaction.
func (p *PGXAdapter) InTx(ctx context.Context, fn func(tx DBAdapter) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err = fn(&pgxTxAdapter{tx: tx}); err != nil {
		return errors.Join(err, ignoreClosed(tx.Rollback(ctx)))
	}

	return tx.Commit(ctx)
}

// pgxTxAdapter runs statements inside an open pgx transaction.
type pgxTxAdapter struct {
	tx pgx.Tx
}

func (t *pgxTxAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	return pgxQuery(ctx, t.tx, query, args)
}

func (t *pgxTxAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return pgxExec(ctx, t.tx, query, args)
}

func (t *pgxTxAdapter) InTx(_ context.Context, fn func(tx DBAdapter) error) error {
	return fn(t)
}

func pgxQuery(ctx context.Context, q pgxQuerier, query string, args []any) (DBRows, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

func pgxExec(ctx context.Context, q pgxQuerier, query string, args []any) (DBResult, error) {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &pgxResult{tag: tag}, nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}

	return err
}

// pgxRows wraps pgx.Rows to implement the DBRows interface.
type pgxRows struct {
	rows pgx.Rows
}

// Next advances to the next row.
func (p *pgxRows) Next() bool {
	return p.rows.Next()
}

// Scan copies row values into provided destinations.
func (p *pgxRows) Scan(dest ...any) error {
	return p.rows.Scan(dest...)
}

// Err returns the error that ended the iteration, if any.
func (p *pgxRows) Err() error {
	return p.rows.Err()
}

// Close closes the rows iterator.
func (p *pgxRows) Close() error {
	p.rows.Close()
	return nil
}

// pgxResult wraps pgconn.CommandTag to implement the DBResult interface.
type pgxResult struct {
	tag pgconn.CommandTag
}

// RowsAffected returns the number of rows affected by the command.
func (p *pgxResult) RowsAffected() (int64, error) {
	return p.tag.RowsAffected(), nil
}
