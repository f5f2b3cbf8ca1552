// Package sqlstore implements the game platform repositories on PostgreSQL and SQLite.
//
// On PostgreSQL the Store runs on pgxpool.Pool, sql.DB (lib/pq) or sqlx.DB; on SQLite it runs on a
// sql.DB opened with the pure Go modernc.org/sqlite driver. All statements are built with goqu using the
// matching dialect and prepared placeholders. Character attributes and item properties are stored as
// JSONB on PostgreSQL and as JSON text on SQLite. Characters and inventory slots carry a version column
// for optimistic concurrency: an update whose expected version no longer matches fails with
// core.ErrConcurrencyConflict. Unique violations are reported as core.ErrAlreadyExists for all drivers.
package sqlstore
