package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore"
)

func newSQLiteStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	db, err := config.NewSQLiteDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := sqlstore.NewStoreFromSQLite(db)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	return store
}

func givenSQLiteCharacter(t *testing.T, store *sqlstore.Store) core.Character {
	t.Helper()

	ctx := context.Background()
	account := core.BuildAccount(uuid.New(), "ayla", "ayla@example.com", "hash", time.Now())
	require.NoError(t, store.InsertAccount(ctx, account))

	character := core.BuildCharacter(uuid.New(), account.ID, "Brom", core.ClassRanger, core.Position{X: 1.5, Y: -2}, time.Now())
	require.NoError(t, store.InsertCharacter(ctx, character))

	return character
}

func Test_SQLiteStore_RejectsNilDatabase(t *testing.T) {
	_, err := sqlstore.NewStoreFromSQLite(nil)

	assert.ErrorIs(t, err, sqlstore.ErrNilDatabaseConnection)
}

func Test_SQLiteStore_SchemaUsesSQLiteTypes(t *testing.T) {
	store := newSQLiteStore(t)

	assert.Contains(t, store.Schema(), "created_at    TIMESTAMP NOT NULL")
	assert.NotContains(t, store.Schema(), "jsonb")
	assert.NoError(t, store.Migrate(context.Background()), "migrating twice must be a no-op")
}

func Test_SQLiteStore_InsertAccount_RoundTripsAndRejectsDuplicates(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := newSQLiteStore(t)
	account := core.BuildAccount(uuid.New(), "ayla", "ayla@example.com", "hash", time.Now())
	duplicate := core.BuildAccount(uuid.New(), "ayla", "other@example.com", "hash", time.Now())

	// act
	insertErr := store.InsertAccount(ctx, account)
	duplicateErr := store.InsertAccount(ctx, duplicate)
	loaded, loadErr := store.AccountByID(ctx, account.ID)

	// assert
	require.NoError(t, insertErr)
	assert.ErrorIs(t, duplicateErr, core.ErrAlreadyExists)
	require.NoError(t, loadErr)
	assert.Equal(t, account.Username, loaded.Username)
	assert.Equal(t, account.Email, loaded.Email)
	assert.True(t, account.CreatedAt.Equal(loaded.CreatedAt), "created at must survive the round trip")
}

func Test_SQLiteStore_AccountByUsername_NotFound(t *testing.T) {
	_, err := newSQLiteStore(t).AccountByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_SQLiteStore_UpdateCharacter_GuardsVersion(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := newSQLiteStore(t)
	character := givenSQLiteCharacter(t, store)

	loaded, err := store.CharacterByID(ctx, character.ID)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Version)

	// act
	updateErr := store.UpdateCharacter(ctx, loaded.MovedTo(core.Position{X: 4, Y: 4}))
	staleErr := store.UpdateCharacter(ctx, loaded.MovedTo(core.Position{X: 9, Y: 9}))
	unknownErr := store.UpdateCharacter(ctx, core.Character{ID: uuid.New(), Version: 1})

	// assert
	require.NoError(t, updateErr)
	assert.ErrorIs(t, staleErr, core.ErrConcurrencyConflict)
	assert.ErrorIs(t, unknownErr, core.ErrNotFound)

	moved, err := store.CharacterByID(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, core.Position{X: 4, Y: 4}, moved.Position)
	assert.Equal(t, 2, moved.Version)
	assert.Equal(t, character.Attributes, moved.Attributes)

	listed, err := store.CharactersByAccount(ctx, character.AccountID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Brom", listed[0].Name)
}

func Test_SQLiteStore_SaveInventoryItems_InsertsAndUpdatesSlots(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := newSQLiteStore(t)
	character := givenSQLiteCharacter(t, store)
	properties := map[string]string{"quality": "fine"}

	require.NoError(t, store.SaveInventoryItems(ctx,
		core.InventoryItem{CharacterID: character.ID, ItemCode: "arrow", Quantity: 40, Properties: properties},
		core.InventoryItem{CharacterID: character.ID, ItemCode: "bow", Quantity: 1},
	))

	inventory, err := store.InventoryOfCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, inventory, 2)

	arrows := inventory[0]
	arrows.Quantity = 99

	// act
	err = store.SaveInventoryItems(ctx, arrows)

	// assert
	require.NoError(t, err)

	inventory, err = store.InventoryOfCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, inventory, 2)
	assert.Equal(t, "arrow", inventory[0].ItemCode)
	assert.Equal(t, 99, inventory[0].Quantity)
	assert.Equal(t, 2, inventory[0].Version)
	assert.Equal(t, properties, inventory[0].Properties)
	assert.Equal(t, "bow", inventory[1].ItemCode)
	assert.Nil(t, inventory[1].Properties)
}

func Test_SQLiteStore_SaveInventoryItems_RollsBackOnConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := newSQLiteStore(t)
	character := givenSQLiteCharacter(t, store)

	require.NoError(t, store.SaveInventoryItems(ctx,
		core.InventoryItem{CharacterID: character.ID, ItemCode: "arrow", Quantity: 10}))

	inventory, err := store.InventoryOfCharacter(ctx, character.ID)
	require.NoError(t, err)

	stale := inventory[0]
	stale.Version = 7
	stale.Quantity = 20

	// act
	err = store.SaveInventoryItems(ctx,
		core.InventoryItem{CharacterID: character.ID, ItemCode: "potion", Quantity: 3},
		stale,
	)

	// assert
	assert.ErrorIs(t, err, core.ErrConcurrencyConflict)

	inventory, err = store.InventoryOfCharacter(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, inventory, 1, "the potion insert must be rolled back")
	assert.Equal(t, 10, inventory[0].Quantity)
}
