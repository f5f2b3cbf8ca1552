package sqlstore_test

import (
	"context"
	"reflect"
	"sync"

	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore/internal/adapters"
)

type statement struct {
	query string
	args  []any
}

type execResult struct {
	rowsAffected int64
	err          error
}

// fakeDB records every statement and replays scripted results in call order.
// Exec calls without a scripted result affect one row, Query calls without one return no rows.
type fakeDB struct {
	mu           sync.Mutex
	statements   []statement
	queryResults [][][]any
	queryErrs    []error
	execResults  []execResult
	transactions int
	rollbacks    int
}

func newFakeDB() *fakeDB {
	return &fakeDB{}
}

func (f *fakeDB) givenRows(rows ...[]any) *fakeDB {
	f.queryResults = append(f.queryResults, rows)
	f.queryErrs = append(f.queryErrs, nil)

	return f
}

func (f *fakeDB) givenExec(rowsAffected int64, err error) *fakeDB {
	f.execResults = append(f.execResults, execResult{rowsAffected: rowsAffected, err: err})
	return f
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (adapters.DBRows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statements = append(f.statements, statement{query: query, args: args})

	if len(f.queryResults) == 0 {
		return &fakeRows{}, nil
	}

	rows, err := f.queryResults[0], f.queryErrs[0]
	f.queryResults, f.queryErrs = f.queryResults[1:], f.queryErrs[1:]

	if err != nil {
		return nil, err
	}

	return &fakeRows{rows: rows, pos: -1}, nil
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (adapters.DBResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statements = append(f.statements, statement{query: query, args: args})

	result := execResult{rowsAffected: 1}
	if len(f.execResults) > 0 {
		result, f.execResults = f.execResults[0], f.execResults[1:]
	}

	if result.err != nil {
		return nil, result.err
	}

	return fakeResult(result.rowsAffected), nil
}

func (f *fakeDB) InTx(_ context.Context, fn func(tx adapters.DBAdapter) error) error {
	f.mu.Lock()
	f.transactions++
	f.mu.Unlock()

	err := fn(f)
	if err != nil {
		f.mu.Lock()
		f.rollbacks++
		f.mu.Unlock()
	}

	return err
}

func (f *fakeDB) recorded() []statement {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]statement(nil), f.statements...)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	if r.rows == nil {
		return false
	}

	r.pos++

	return r.pos < len(r.rows)
}

// Scan assigns the scripted values directly, so their types must match the destinations exactly.
func (r *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.rows[r.pos][i]))
	}

	return nil
}

func (r *fakeRows) Err() error {
	return nil
}

func (r *fakeRows) Close() error {
	return nil
}

type fakeResult int64

func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}
