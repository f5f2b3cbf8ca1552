package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/dispatch/oteladapters"
	"github.com/AntonStoeckl/game-platform-go/example/app"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/additem"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/createcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/movecharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/registeraccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/accountbyid"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/charactersbyaccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/inventoryofcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/config"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/memory"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/sqlstore"
	"github.com/AntonStoeckl/game-platform-go/testutil/observability/testdoubles"
)

type fixedRoller float64

func (r fixedRoller) Float64() float64 { return float64(r) }

// flakyStore fails the first inventory save with a concurrency conflict.
type flakyStore struct {
	*memory.Store
	conflicts int
}

func (s *flakyStore) SaveInventoryItems(ctx context.Context, items ...core.InventoryItem) error {
	if s.conflicts > 0 {
		s.conflicts--
		return core.ErrConcurrencyConflict
	}

	return s.Store.SaveInventoryItems(ctx, items...)
}

func defaultConfig(t *testing.T) config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	return cfg
}

func deps(t *testing.T, store shell.Store) app.Deps {
	t.Helper()

	hasher, err := shell.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	return app.Deps{Store: store, Hasher: hasher, Roller: fixedRoller(0.99)}
}

func Test_New_RegistersAllFeatures(t *testing.T) {
	// act
	a, err := app.New(defaultConfig(t), deps(t, memory.NewStore()))

	// assert
	require.NoError(t, err)

	types := make([]string, 0, len(a.Registry.Describe()))
	for _, route := range a.Registry.Describe() {
		types = append(types, route.Type)
	}

	assert.ElementsMatch(t, []string{
		"RegisterAccount", "CreateCharacter", "AddItem", "MoveCharacter",
		"AccountByID", "CharactersByAccount", "InventoryOfCharacter",
	}, types)
}

func Test_New_RequiresStoreAndHasher(t *testing.T) {
	_, storeErr := app.New(defaultConfig(t), app.Deps{})
	_, hasherErr := app.New(defaultConfig(t), app.Deps{Store: memory.NewStore()})

	assert.ErrorIs(t, storeErr, app.ErrNilStore)
	assert.ErrorIs(t, hasherErr, app.ErrNilHasher)
}

func Test_App_PlaysThroughAllFeatures(t *testing.T) {
	playThroughAllFeatures(t, memory.NewStore())
}

func Test_App_PlaysThroughAllFeaturesOnSQLite(t *testing.T) {
	store, closeStore, err := app.OpenStore(context.Background(), defaultConfig(t), nil)
	require.NoError(t, err)
	defer closeStore()

	playThroughAllFeatures(t, store)
}

func playThroughAllFeatures(t *testing.T, store shell.Store) {
	t.Helper()

	// arrange
	ctx := context.Background()
	a, err := app.New(defaultConfig(t), deps(t, store))
	require.NoError(t, err)

	// act
	account := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, a.Commands,
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))
	require.True(t, account.IsSuccess(), account.Summary())

	character := dispatch.SendWithResult[createcharacter.Command, uuid.UUID](ctx, a.Commands,
		createcharacter.BuildCommand(account.MustValue(), "Brom", core.ClassRanger, time.Now()))
	require.True(t, character.IsSuccess(), character.Summary())

	added := a.Commands.Send(ctx, additem.BuildCommand(character.MustValue(), "arrow", 150, nil))
	require.True(t, added.IsSuccess(), added.Summary())

	moved := dispatch.SendWithResult[movecharacter.Command, movecharacter.MoveResult](ctx, a.Commands,
		movecharacter.BuildCommand(character.MustValue(), 6, 8))
	require.True(t, moved.IsSuccess(), moved.Summary())

	profile := dispatch.Ask[accountbyid.Query, accountbyid.AccountView](ctx, a.Queries,
		accountbyid.BuildQuery(account.MustValue()))
	characters := dispatch.Ask[charactersbyaccount.Query, charactersbyaccount.Characters](ctx, a.Queries,
		charactersbyaccount.BuildQuery(account.MustValue()))
	inventory := dispatch.Ask[inventoryofcharacter.Query, inventoryofcharacter.InventoryView](ctx, a.Queries,
		inventoryofcharacter.BuildQuery(character.MustValue()))

	// assert
	assert.Equal(t, "haven", moved.MustValue().Region)
	assert.Equal(t, "ayla", profile.MustValue().Username)
	require.Len(t, characters.MustValue().Characters, 1)
	assert.Equal(t, core.Position{X: 6, Y: 8}, characters.MustValue().Characters[0].Position)
	assert.Equal(t, 150, inventory.MustValue().TotalItems)
	assert.Len(t, inventory.MustValue().Slots, 2)
}

func Test_App_SelfValidatingQueriesAreRejectedBeforeHandling(t *testing.T) {
	// arrange
	ctx := context.Background()
	a, err := app.New(defaultConfig(t), deps(t, memory.NewStore()))
	require.NoError(t, err)

	// act
	characters := dispatch.Ask[charactersbyaccount.Query, charactersbyaccount.Characters](ctx, a.Queries,
		charactersbyaccount.BuildQuery(uuid.Nil))
	inventory := dispatch.Ask[inventoryofcharacter.Query, inventoryofcharacter.InventoryView](ctx, a.Queries,
		inventoryofcharacter.BuildQuery(uuid.Nil))

	// assert
	assert.Equal(t, []string{"account id is required"}, characters.Errors())
	assert.Equal(t, []string{"character id is required"}, inventory.Errors())
}

func Test_App_RetriesConcurrencyConflicts(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := &flakyStore{Store: memory.NewStore(), conflicts: 2}
	a, err := app.New(defaultConfig(t), deps(t, store))
	require.NoError(t, err)

	accountID := uuid.New()
	require.NoError(t, store.InsertAccount(ctx, core.BuildAccount(accountID, "ayla", "ayla@example.com", "hash", time.Now())))
	characterID := uuid.New()
	require.NoError(t, store.InsertCharacter(ctx,
		core.BuildCharacter(characterID, accountID, "Brom", core.ClassRogue, core.SpawnPosition, time.Now())))

	// act
	result := a.Commands.Send(ctx, additem.BuildCommand(characterID, "dagger", 1, nil))

	// assert
	require.True(t, result.IsSuccess(), result.Summary())
	assert.Zero(t, store.conflicts)
}

func Test_App_RecordsLogsAndMetrics(t *testing.T) {
	// arrange
	ctx := context.Background()
	logSpy := testdoubles.NewLogHandlerSpy(false)
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("app-test")

	d := deps(t, memory.NewStore())
	d.Logger = slog.New(logSpy)
	d.Metrics = oteladapters.NewMetricsCollector(meter)

	a, err := app.New(defaultConfig(t), d)
	require.NoError(t, err)

	// act
	result := dispatch.Ask[accountbyid.Query, accountbyid.AccountView](ctx, a.Queries, accountbyid.BuildQuery(uuid.New()))

	// assert
	assert.True(t, result.IsFailure())
	assert.True(t, logSpy.HasRecord(slog.LevelInfo, behaviors.LogMsgHandled))

	var collected metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &collected))
	require.NotEmpty(t, collected.ScopeMetrics)
	assert.NotEmpty(t, collected.ScopeMetrics[0].Metrics)
}

func Test_OpenStore_DefaultsToMigratedSQLite(t *testing.T) {
	// arrange
	ctx := context.Background()
	account := core.BuildAccount(uuid.New(), "ayla", "ayla@example.com", "hash", time.Now())

	// act
	store, closeStore, err := app.OpenStore(ctx, defaultConfig(t), nil)

	// assert
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &sqlstore.Store{}, store)
	require.NoError(t, store.InsertAccount(ctx, account))

	loaded, err := store.AccountByUsername(ctx, "ayla")
	require.NoError(t, err)
	assert.Equal(t, account.ID, loaded.ID)
}

func Test_OpenStore_SelectsMemoryDriver(t *testing.T) {
	// arrange
	cfg, err := config.LoadFrom(map[string]string{"GAME_DB_DRIVER": config.DriverMemory})
	require.NoError(t, err)

	// act
	store, closeStore, err := app.OpenStore(context.Background(), cfg, nil)

	// assert
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &memory.Store{}, store)
}
