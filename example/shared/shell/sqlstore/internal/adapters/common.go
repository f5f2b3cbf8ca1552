package adapters

import (
	"context"
	"database/sql"
	"errors"
)

// stdQuerier is implemented by *sql.DB, *sql.Tx, *sqlx.DB and *sqlx.Tx.
type stdQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// stdTx is the committable part of *sql.Tx and *sqlx.Tx.
type stdTx interface {
	stdQuerier
	Commit() error
	Rollback() error
}

// stdTxAdapter runs statements inside an open database/sql transaction.
type stdTxAdapter struct {
	tx stdTx
}

func (t *stdTxAdapter) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	return stdQuery(ctx, t.tx, query, args)
}

func (t *stdTxAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	return stdExec(ctx, t.tx, query, args)
}

func (t *stdTxAdapter) InTx(_ context.Context, fn func(tx DBAdapter) error) error {
	return fn(t)
}

func runStdTx(tx stdTx, fn func(tx DBAdapter) error) error {
	if err := fn(&stdTxAdapter{tx: tx}); err != nil {
		rollbackErr := tx.Rollback()
		if errors.Is(rollbackErr, sql.ErrTxDone) {
			rollbackErr = nil
		}

		return errors.Join(err, rollbackErr)
	}

	return tx.Commit()
}

func stdQuery(ctx context.Context, q stdQuerier, query string, args []any) (DBRows, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

func stdExec(ctx context.Context, q stdQuerier, query string, args []any) (DBResult, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// stdRows wraps standard library sql.Rows to implement DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

// Next advances to the next row.
func (s *stdRows) Next() bool {
	return s.rows.Next()
}

// Scan copies row values into provided destinations.
func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

// Err returns the error that ended the iteration, if any.
func (s *stdRows) Err() error {
	return s.rows.Err()
}

// Close closes the rows iterator.
func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps standard library sql.Result to implement DBResult interface.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
