package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore/internal/adapters"
)

const (
	defaultTablePrefix        = "game_"
	tableAccounts             = "accounts"
	tableCharacters           = "characters"
	tableInventoryItems       = "inventory_items"
	dialectPostgres           = "postgres"
	dialectSQLite             = "sqlite3"
	castJsonb                 = "?::jsonb"
	colID                     = "id"
	colUsername               = "username"
	colEmail                  = "email"
	colPasswordHash           = "password_hash"
	colCreatedAt              = "created_at"
	colAccountID              = "account_id"
	colName                   = "name"
	colClass                  = "class"
	colLevel                  = "level"
	colPosX                   = "pos_x"
	colPosY                   = "pos_y"
	colAttributes             = "attributes"
	colVersion                = "version"
	colCharacterID            = "character_id"
	colItemCode               = "item_code"
	colQuantity               = "quantity"
	colProperties             = "properties"
	logMsgBuildQueryFailed    = "failed to build sql statement"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgMigrateFailed       = "failed to migrate schema"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "game store operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrTable              = "table"
	logAttrID                 = "id"
	logAttrExpectedVersion    = "expected_version"
	logAttrDurationMS         = "duration_ms"
	logActionMigrate          = "migrate"
)

// Store implements shell.Store on PostgreSQL or SQLite.
type Store struct {
	db          adapters.DBAdapter
	dialect     string
	tablePrefix string
	logger      Logger
}

var _ shell.Store = (*Store)(nil)

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), dialectPostgres, options)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), dialectPostgres, options)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), dialectPostgres, options)
}

// NewStoreFromSQLite creates a new Store on a SQLite database opened with the modernc.org/sqlite driver.
// Timestamps are only read back as time.Time when the DSN sets _time_format=sqlite.
func NewStoreFromSQLite(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), dialectSQLite, options)
}

func newStore(db adapters.DBAdapter, dialect string, options []Option) (*Store, error) {
	s := &Store{
		db:          db,
		dialect:     dialect,
		tablePrefix: defaultTablePrefix,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// InsertAccount stores a new account.
func (s *Store) InsertAccount(ctx context.Context, account core.Account) error {
	query, args, err := s.builder().
		Insert(s.table(tableAccounts)).
		Prepared(true).
		Rows(goqu.Record{
			colID:           account.ID,
			colUsername:     account.Username,
			colEmail:        account.Email,
			colPasswordHash: account.PasswordHash,
			colCreatedAt:    account.CreatedAt,
		}).
		ToSQL()
	if err != nil {
		return s.buildFailed(err)
	}

	if _, err = s.exec(ctx, s.db, "insert account", query, args); err != nil {
		return s.writeFailed(fmt.Sprintf("insert account %q", account.Username), err)
	}

	return nil
}

// AccountByID loads an account.
func (s *Store) AccountByID(ctx context.Context, id core.AccountID) (core.Account, error) {
	return s.selectAccount(ctx, goqu.Ex{colID: id}, id.String())
}

// AccountByUsername loads an account by its unique username.
func (s *Store) AccountByUsername(ctx context.Context, username string) (core.Account, error) {
	return s.selectAccount(ctx, goqu.Ex{colUsername: username}, username)
}

func (s *Store) selectAccount(ctx context.Context, where goqu.Ex, key string) (core.Account, error) {
	query, args, err := s.builder().
		From(s.table(tableAccounts)).
		Prepared(true).
		Select(colID, colUsername, colEmail, colPasswordHash, colCreatedAt).
		Where(where).
		ToSQL()
	if err != nil {
		return core.Account{}, s.buildFailed(err)
	}

	accounts, err := queryAll(ctx, s, "select account", query, args, func(rows adapters.DBRows) (core.Account, error) {
		var a core.Account
		err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
		a.CreatedAt = core.ToCreatedAt(a.CreatedAt)

		return a, err
	})
	if err != nil {
		return core.Account{}, err
	}

	if len(accounts) == 0 {
		return core.Account{}, fmt.Errorf("account %s: %w", key, core.ErrNotFound)
	}

	return accounts[0], nil
}

// InsertCharacter stores a new character with version 1.
func (s *Store) InsertCharacter(ctx context.Context, character core.Character) error {
	attributes, err := shell.EncodeJSON(character.Attributes)
	if err != nil {
		return err
	}

	query, args, err := s.builder().
		Insert(s.table(tableCharacters)).
		Prepared(true).
		Rows(goqu.Record{
			colID:         character.ID,
			colAccountID:  character.AccountID,
			colName:       character.Name,
			colClass:      character.Class,
			colLevel:      character.Level,
			colPosX:       character.Position.X,
			colPosY:       character.Position.Y,
			colAttributes: s.jsonColumn(attributes),
			colVersion:    1,
			colCreatedAt:  character.CreatedAt,
		}).
		ToSQL()
	if err != nil {
		return s.buildFailed(err)
	}

	if _, err = s.exec(ctx, s.db, "insert character", query, args); err != nil {
		return s.writeFailed(fmt.Sprintf("insert character %q", character.Name), err)
	}

	return nil
}

// CharacterByID loads a character.
func (s *Store) CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error) {
	characters, err := s.selectCharacters(ctx, goqu.Ex{colID: id})
	if err != nil {
		return core.Character{}, err
	}

	if len(characters) == 0 {
		return core.Character{}, fmt.Errorf("character %s: %w", id, core.ErrNotFound)
	}

	return characters[0], nil
}

// CharactersByAccount lists the characters of an account ordered by creation time and name.
func (s *Store) CharactersByAccount(ctx context.Context, accountID core.AccountID) ([]core.Character, error) {
	return s.selectCharacters(ctx, goqu.Ex{colAccountID: accountID})
}

func (s *Store) selectCharacters(ctx context.Context, where goqu.Ex) ([]core.Character, error) {
	query, args, err := s.builder().
		From(s.table(tableCharacters)).
		Prepared(true).
		Select(colID, colAccountID, colName, colClass, colLevel, colPosX, colPosY, colAttributes, colVersion, colCreatedAt).
		Where(where).
		Order(goqu.I(colCreatedAt).Asc(), goqu.I(colName).Asc()).
		ToSQL()
	if err != nil {
		return nil, s.buildFailed(err)
	}

	return queryAll(ctx, s, "select characters", query, args, func(rows adapters.DBRows) (core.Character, error) {
		var (
			c          core.Character
			attributes []byte
		)

		if err := rows.Scan(
			&c.ID, &c.AccountID, &c.Name, &c.Class, &c.Level,
			&c.Position.X, &c.Position.Y, &attributes, &c.Version, &c.CreatedAt,
		); err != nil {
			return core.Character{}, err
		}

		decoded, decodeErr := shell.DecodeJSON[map[string]int](attributes)
		c.CreatedAt = core.ToCreatedAt(c.CreatedAt)
		c.Attributes = decoded

		return c, decodeErr
	})
}

// UpdateCharacter saves a character if its version matches the stored one.
func (s *Store) UpdateCharacter(ctx context.Context, character core.Character) error {
	attributes, err := shell.EncodeJSON(character.Attributes)
	if err != nil {
		return err
	}

	query, args, err := s.builder().
		Update(s.table(tableCharacters)).
		Prepared(true).
		Set(goqu.Record{
			colName:       character.Name,
			colClass:      character.Class,
			colLevel:      character.Level,
			colPosX:       character.Position.X,
			colPosY:       character.Position.Y,
			colAttributes: s.jsonColumn(attributes),
			colVersion:    character.Version + 1,
		}).
		Where(goqu.Ex{colID: character.ID, colVersion: character.Version}).
		ToSQL()
	if err != nil {
		return s.buildFailed(err)
	}

	return s.versionedUpdate(ctx, s.db, tableCharacters, character.ID, character.Version, query, args)
}

// InventoryOfCharacter lists all slots of a character ordered by item code and quantity.
func (s *Store) InventoryOfCharacter(ctx context.Context, characterID core.CharacterID) (core.Inventory, error) {
	query, args, err := s.builder().
		From(s.table(tableInventoryItems)).
		Prepared(true).
		Select(colID, colCharacterID, colItemCode, colQuantity, colProperties, colVersion).
		Where(goqu.Ex{colCharacterID: characterID}).
		Order(goqu.I(colItemCode).Asc(), goqu.I(colQuantity).Desc(), goqu.I(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, s.buildFailed(err)
	}

	items, err := queryAll(ctx, s, "select inventory", query, args, func(rows adapters.DBRows) (core.InventoryItem, error) {
		var (
			item       core.InventoryItem
			properties []byte
		)

		if err := rows.Scan(&item.ID, &item.CharacterID, &item.ItemCode, &item.Quantity, &properties, &item.Version); err != nil {
			return core.InventoryItem{}, err
		}

		decoded, decodeErr := shell.DecodeJSON[map[string]string](properties)
		if len(decoded) > 0 {
			item.Properties = decoded
		}

		return item, decodeErr
	})
	if err != nil {
		return nil, err
	}

	return core.Inventory(items), nil
}

// SaveInventoryItems inserts new slots and updates existing ones inside one transaction.
// New slots without an ID get a fresh one.
func (s *Store) SaveInventoryItems(ctx context.Context, items ...core.InventoryItem) error {
	return s.db.InTx(ctx, func(tx adapters.DBAdapter) error {
		for _, item := range items {
			if err := s.saveInventoryItem(ctx, tx, item); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Store) saveInventoryItem(ctx context.Context, tx adapters.DBAdapter, item core.InventoryItem) error {
	properties, err := shell.EncodeJSON(item.Properties)
	if err != nil {
		return err
	}

	if item.Version == 0 {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}

		query, args, buildErr := s.builder().
			Insert(s.table(tableInventoryItems)).
			Prepared(true).
			Rows(goqu.Record{
				colID:          item.ID,
				colCharacterID: item.CharacterID,
				colItemCode:    item.ItemCode,
				colQuantity:    item.Quantity,
				colProperties:  s.jsonColumn(properties),
				colVersion:     1,
			}).
			ToSQL()
		if buildErr != nil {
			return s.buildFailed(buildErr)
		}

		if _, err = s.exec(ctx, tx, "insert inventory item", query, args); err != nil {
			return s.writeFailed(fmt.Sprintf("insert inventory item %s", item.ID), err)
		}

		return nil
	}

	query, args, err := s.builder().
		Update(s.table(tableInventoryItems)).
		Prepared(true).
		Set(goqu.Record{
			colQuantity:   item.Quantity,
			colProperties: s.jsonColumn(properties),
			colVersion:    item.Version + 1,
		}).
		Where(goqu.Ex{colID: item.ID, colVersion: item.Version}).
		ToSQL()
	if err != nil {
		return s.buildFailed(err)
	}

	return s.versionedUpdate(ctx, tx, tableInventoryItems, item.ID, item.Version, query, args)
}

// versionedUpdate runs an update guarded by the expected version. When no row was affected it
// tells a vanished row (core.ErrNotFound) from a concurrent change (core.ErrConcurrencyConflict).
func (s *Store) versionedUpdate(
	ctx context.Context,
	db adapters.DBAdapter,
	table string,
	id uuid.UUID,
	expectedVersion int,
	query string,
	args []any,
) error {
	result, err := s.exec(ctx, db, "update "+table, query, args)
	if err != nil {
		return s.writeFailed(fmt.Sprintf("update %s %s", table, id), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logError(logMsgRowsAffectedFailed, err)
		return fmt.Errorf("update %s %s: %w", table, id, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	exists, err := s.exists(ctx, db, table, id)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("update %s %s: %w", table, id, core.ErrNotFound)
	}

	s.logInfo(logMsgConcurrencyConflict, logAttrTable, table, logAttrID, id.String(), logAttrExpectedVersion, expectedVersion)

	return fmt.Errorf("update %s %s: %w", table, id, core.ErrConcurrencyConflict)
}

func (s *Store) exists(ctx context.Context, db adapters.DBAdapter, table string, id uuid.UUID) (bool, error) {
	query, args, err := s.builder().
		From(s.table(table)).
		Prepared(true).
		Select(goqu.L("1")).
		Where(goqu.Ex{colID: id}).
		ToSQL()
	if err != nil {
		return false, s.buildFailed(err)
	}

	found, err := queryAll(ctx, s, "select exists", query, args, func(rows adapters.DBRows) (int, error) {
		var one int
		return one, rows.Scan(&one)
	}, db)
	if err != nil {
		return false, err
	}

	return len(found) > 0, nil
}

func (s *Store) exec(
	ctx context.Context,
	db adapters.DBAdapter,
	operation string,
	query string,
	args []any,
) (adapters.DBResult, error) {
	start := time.Now()
	result, err := db.Exec(ctx, query, args...)
	s.logQueryWithDuration(operation, query, time.Since(start))

	if err != nil {
		if !isUniqueViolation(err) {
			s.logError(logMsgDBExecFailed, err, logAttrQuery, query)
		}

		return nil, err
	}

	return result, nil
}

// queryAll runs query and scans every row. The optional db overrides the store's connection,
// which is how reads inside a transaction see the transaction's own writes.
func queryAll[T any](
	ctx context.Context,
	s *Store,
	operation string,
	query string,
	args []any,
	scan func(rows adapters.DBRows) (T, error),
	db ...adapters.DBAdapter,
) ([]T, error) {
	conn := s.db
	if len(db) > 0 {
		conn = db[0]
	}

	start := time.Now()
	rows, err := conn.Query(ctx, query, args...)
	s.logQueryWithDuration(operation, query, time.Since(start))

	if err != nil {
		s.logError(logMsgDBQueryFailed, err, logAttrQuery, query)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	defer s.closeRows(rows)

	result := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, fmt.Errorf("%s: %w", operation, scanErr)
		}

		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		s.logError(logMsgDBQueryFailed, err, logAttrQuery, query)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return result, nil
}

func (s *Store) writeFailed(operation string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", operation, errors.Join(core.ErrAlreadyExists, err))
	}

	return fmt.Errorf("%s: %w", operation, err)
}

func (s *Store) buildFailed(err error) error {
	s.logError(logMsgBuildQueryFailed, err)
	return fmt.Errorf("%s: %w", logMsgBuildQueryFailed, err)
}

func (s *Store) builder() goqu.DialectWrapper {
	return goqu.Dialect(s.dialect)
}

// jsonColumn casts encoded JSON to jsonb on Postgres. SQLite keeps it as text.
func (s *Store) jsonColumn(data []byte) any {
	if s.dialect == dialectPostgres {
		return goqu.L(castJsonb, string(data))
	}

	return string(data)
}

func (s *Store) table(name string) string {
	return s.tablePrefix + name
}

func (s *Store) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil && s.logger != nil {
		s.logger.Warn(logMsgCloseRowsFailed, logAttrError, err.Error())
	}
}

func (s *Store) logQueryWithDuration(operation string, query string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, logAttrQuery, query, logAttrDurationMS, float64(duration.Microseconds())/1000.0)
	}
}

func (s *Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

func (s *Store) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Store) logError(msg string, err error, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}
