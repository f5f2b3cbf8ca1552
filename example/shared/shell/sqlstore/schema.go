package sqlstore

import (
	"context"
	"fmt"
)

const postgresSchemaTemplate = `
CREATE TABLE IF NOT EXISTS %[1]s (
    id            uuid PRIMARY KEY,
    username      text NOT NULL UNIQUE,
    email         text NOT NULL,
    password_hash text NOT NULL,
    created_at    timestamp with time zone NOT NULL
);

CREATE TABLE IF NOT EXISTS %[2]s (
    id         uuid PRIMARY KEY,
    account_id uuid NOT NULL REFERENCES %[1]s (id),
    name       text NOT NULL UNIQUE,
    class      text NOT NULL,
    level      integer NOT NULL,
    pos_x      double precision NOT NULL,
    pos_y      double precision NOT NULL,
    attributes jsonb NOT NULL DEFAULT '{}'::jsonb,
    version    integer NOT NULL,
    created_at timestamp with time zone NOT NULL
);

CREATE INDEX IF NOT EXISTS %[2]s_account_id_idx ON %[2]s (account_id);

CREATE TABLE IF NOT EXISTS %[3]s (
    id           uuid PRIMARY KEY,
    character_id uuid NOT NULL REFERENCES %[2]s (id),
    item_code    text NOT NULL,
    quantity     integer NOT NULL CHECK (quantity BETWEEN 1 AND 99),
    properties   jsonb NOT NULL DEFAULT '{}'::jsonb,
    version      integer NOT NULL
);

CREATE INDEX IF NOT EXISTS %[3]s_character_id_idx ON %[3]s (character_id);
`

const sqliteSchemaTemplate = `
CREATE TABLE IF NOT EXISTS %[1]s (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS %[2]s (
    id         TEXT PRIMARY KEY,
    account_id TEXT NOT NULL REFERENCES %[1]s (id),
    name       TEXT NOT NULL UNIQUE,
    class      TEXT NOT NULL,
    level      INTEGER NOT NULL,
    pos_x      REAL NOT NULL,
    pos_y      REAL NOT NULL,
    attributes TEXT NOT NULL DEFAULT '{}',
    version    INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS %[2]s_account_id_idx ON %[2]s (account_id);

CREATE TABLE IF NOT EXISTS %[3]s (
    id           TEXT PRIMARY KEY,
    character_id TEXT NOT NULL REFERENCES %[2]s (id),
    item_code    TEXT NOT NULL,
    quantity     INTEGER NOT NULL CHECK (quantity BETWEEN 1 AND 99),
    properties   TEXT NOT NULL DEFAULT '{}',
    version      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS %[3]s_character_id_idx ON %[3]s (character_id);
`

// Schema returns the DDL for all tables of the store in the store's dialect.
func (s *Store) Schema() string {
	template := postgresSchemaTemplate
	if s.dialect == dialectSQLite {
		template = sqliteSchemaTemplate
	}

	return fmt.Sprintf(template, s.table(tableAccounts), s.table(tableCharacters), s.table(tableInventoryItems))
}

// Migrate creates all tables and indexes that do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, s.Schema()); err != nil {
		s.logError(logMsgMigrateFailed, err)
		return fmt.Errorf("migrate schema: %w", err)
	}

	s.logOperation(logActionMigrate)

	return nil
}
