package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// NewPostgresSQLX opens a *sqlx.DB (lib/pq) for dsn and verifies the connection.
func NewPostgresSQLX(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, postgresDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	configureSQLPool(db.DB)

	return db, nil
}
