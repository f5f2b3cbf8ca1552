package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

const (
	postgresDriverName        = "postgres"
	defaultSQLMaxOpenConns    = 50
	defaultSQLMaxIdleConns    = 10
	defaultSQLMaxConnLifetime = time.Hour
	defaultSQLMaxConnIdleTime = time.Minute * 5
)

// NewPostgresSQLDB opens a *sql.DB (lib/pq) for dsn and verifies the connection.
func NewPostgresSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(postgresDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	configureSQLPool(db)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func configureSQLPool(db *sql.DB) {
	db.SetMaxOpenConns(defaultSQLMaxOpenConns)
	db.SetMaxIdleConns(defaultSQLMaxIdleConns)
	db.SetConnMaxLifetime(defaultSQLMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultSQLMaxConnIdleTime)
}
