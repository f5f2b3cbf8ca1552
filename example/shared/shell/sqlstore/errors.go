package sqlstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const uniqueViolationCode = "23505"

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is provided.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrInvalidTablePrefix is returned when a table prefix contains characters other than
	// lower-case letters, digits and underscores.
	ErrInvalidTablePrefix = errors.New("table prefix must only contain lower-case letters, digits and underscores")
)

// isUniqueViolation recognizes unique violations raised through pgx, lib/pq and modernc.org/sqlite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	return false
}
