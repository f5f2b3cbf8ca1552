package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // sqlite driver
)

const (
	sqliteDriverName = "sqlite"
	sqliteDSNOptions = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"
)

// SQLiteDSN builds the modernc.org/sqlite DSN for path. The write time format is the one the driver
// parses back into time.Time for TIMESTAMP columns.
func SQLiteDSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + sqliteDSNOptions
}

// NewSQLiteDB opens the embedded SQLite database at path and verifies the connection.
//
// The pool holds exactly one connection that is never recycled, so an in-memory database (":memory:")
// lives as long as the *sql.DB and writers are serialized.
func NewSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}
