package sqlstore

import "github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore/internal/adapters"

// NewStoreWithAdapter exposes the adapter-based constructor to the external tests.
func NewStoreWithAdapter(db adapters.DBAdapter, options ...Option) (*Store, error) {
	return newStore(db, dialectPostgres, options)
}
