// Package adapters provide database adapter implementations for the Postgres game store.
//
// Three connection types are supported: pgxpool.Pool, sql.DB and sqlx.DB. All of them are
// wrapped behind the DBAdapter interface, so the store builds its statements once and runs
// them on whichever connection the application was configured with.
package adapters
