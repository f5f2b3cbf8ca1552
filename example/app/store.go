package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/memory"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore"
)

// OpenStore opens the store selected by cfg.DBDriver and, if configured, migrates its schema.
// The embedded SQLite database is always migrated. The returned close function releases the
// database connection.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (shell.Store, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		return memory.NewStore(), func() {}, nil
	}

	options := []sqlstore.Option{sqlstore.WithTablePrefix(cfg.DBTablePrefix)}
	if logger != nil {
		options = append(options, sqlstore.WithLogger(logger))
	}

	var (
		store   *sqlstore.Store
		closeDB func()
		err     error
	)

	migrate := cfg.DBMigrate

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, dbErr := config.NewSQLiteDB(ctx, cfg.SQLitePath)
		if dbErr != nil {
			return nil, nil, dbErr
		}

		closeDB = func() { _ = db.Close() }
		store, err = sqlstore.NewStoreFromSQLite(db, options...)
		migrate = true

	case config.DriverPGX:
		pool, poolErr := config.NewPostgresPGXPool(ctx, cfg.DBDSN)
		if poolErr != nil {
			return nil, nil, poolErr
		}

		closeDB = pool.Close
		store, err = sqlstore.NewStoreFromPGXPool(pool, options...)

	case config.DriverSQL:
		db, dbErr := config.NewPostgresSQLDB(ctx, cfg.DBDSN)
		if dbErr != nil {
			return nil, nil, dbErr
		}

		closeDB = func() { _ = db.Close() }
		store, err = sqlstore.NewStoreFromSQLDB(db, options...)

	case config.DriverSQLX:
		db, dbErr := config.NewPostgresSQLX(ctx, cfg.DBDSN)
		if dbErr != nil {
			return nil, nil, dbErr
		}

		closeDB = func() { _ = db.Close() }
		store, err = sqlstore.NewStoreFromSQLX(db, options...)

	default:
		return nil, nil, fmt.Errorf("open store %q: %w", cfg.DBDriver, config.ErrUnknownDriver)
	}

	if err != nil {
		closeDB()
		return nil, nil, err
	}

	if migrate {
		if err = store.Migrate(ctx); err != nil {
			closeDB()
			return nil, nil, err
		}
	}

	return store, closeDB, nil
}
