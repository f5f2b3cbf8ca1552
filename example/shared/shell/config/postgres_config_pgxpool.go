package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPGXMaxConnections    = int32(8)
	defaultPGXMinConnections    = int32(2)
	defaultPGXMaxConnLifetime   = time.Hour
	defaultPGXMaxConnIdleTime   = time.Minute * 5
	defaultPGXHealthCheckPeriod = time.Minute
	defaultConnectTimeout       = time.Second * 5
)

// PostgresPGXPoolConfig creates a pgxpool.Config for dsn with the platform's pool settings.
func PostgresPGXPoolConfig(dsn string) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}

	dbConfig.MaxConns = defaultPGXMaxConnections
	dbConfig.MinConns = defaultPGXMinConnections
	dbConfig.MaxConnLifetime = defaultPGXMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultPGXMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultPGXHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// NewPostgresPGXPool opens a pgx pool for dsn and verifies the connection.
func NewPostgresPGXPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	dbConfig, err := PostgresPGXPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
