// Package config provides process configuration for the example game platform.
//
// Configuration is read from GAME_* environment variables. The package also contains the
// factories for the three supported PostgreSQL connection types (pgx.Pool, sql.DB, sqlx.DB),
// the embedded SQLite database and the OpenTelemetry provider setup.
//
// This package is part of the shell (infrastructure) layer.
package config
