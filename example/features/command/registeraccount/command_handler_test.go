package registeraccount_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/registeraccount"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell"
	"github.com/AntonStoeckl/game-platform-go/example/shared/shell/memory"
)

func commandBus(t *testing.T, handler registeraccount.CommandHandler) *dispatch.CommandBus {
	t.Helper()

	registry, err := dispatch.Build(registeraccount.Module(handler))
	require.NoError(t, err)

	bus, err := dispatch.NewCommandBus(registry)
	require.NoError(t, err)

	return bus
}

func newHasher(t *testing.T) shell.BcryptHasher {
	t.Helper()

	hasher, err := shell.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher
}

func Test_CommandHandler_RegistersAccount(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memory.NewStore()
	accountID := uuid.New()
	handler := registeraccount.NewCommandHandler(store, newHasher(t),
		registeraccount.WithIDGenerator(func() uuid.UUID { return accountID }))
	command := registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now())

	// act
	result := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, commandBus(t, handler), command)

	// assert
	require.True(t, result.IsSuccess(), result.Summary())
	assert.Equal(t, accountID, result.MustValue())

	stored, err := store.AccountByID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "ayla", stored.Username)
	assert.NotEqual(t, "Sup3rSecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))
}

func Test_CommandHandler_TakenUsernameIsFailureOutcome(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memory.NewStore()
	bus := commandBus(t, registeraccount.NewCommandHandler(store, newHasher(t)))
	first := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, bus,
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))
	require.True(t, first.IsSuccess())

	// act
	second := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, bus,
		registeraccount.BuildCommand("ayla", "other@example.com", "An0therSecret", time.Now()))

	// assert
	assert.True(t, second.IsFailure())
	assert.Equal(t, []string{"username already exists"}, second.Errors())
}

func Test_CommandHandler_InvalidInputNeverReachesStore(t *testing.T) {
	// arrange
	store := &countingStore{Store: memory.NewStore()}
	bus := commandBus(t, registeraccount.NewCommandHandler(store, newHasher(t)))

	// act
	result := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](context.Background(), bus,
		registeraccount.BuildCommand("", "not-an-email", "weak", time.Now()))

	// assert
	assert.True(t, result.IsFailure())
	assert.Equal(t, []string{
		"username is required",
		"email must be a valid address",
		"password must have at least 8 characters with upper case, lower case and a digit",
	}, result.Errors())
	assert.Zero(t, store.calls)
}

func Test_CommandHandler_EmptyUsernameAndMalformedEmailYieldTwoErrors(t *testing.T) {
	// arrange
	bus := commandBus(t, registeraccount.NewCommandHandler(memory.NewStore(), newHasher(t)))

	// act
	result := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](context.Background(), bus,
		registeraccount.BuildCommand("", "not-an-email", "Str0ngPass1", time.Now()))

	// assert
	assert.True(t, result.IsFailure())
	assert.Equal(t, []string{"username is required", "email must be a valid address"}, result.Errors())
}

func Test_CommandHandler_TakenUsernameIsRejectedBeforeHandling(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := &insertCountingStore{Store: memory.NewStore()}
	bus := commandBus(t, registeraccount.NewCommandHandler(store, newHasher(t)))
	first := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, bus,
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))
	require.True(t, first.IsSuccess())

	// act
	second := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, bus,
		registeraccount.BuildCommand("ayla", "bad-email", "An0therSecret", time.Now()))

	// assert
	assert.Equal(t, []string{"email must be a valid address", "username already exists"}, second.Errors())
	assert.Equal(t, 1, store.inserts)
}

func Test_CommandHandler_AvailabilityLookupErrorFailsTheSend(t *testing.T) {
	// arrange
	storeErr := errors.New("connection refused")
	bus := commandBus(t, registeraccount.NewCommandHandler(&failingStore{err: storeErr}, newHasher(t)))

	// act
	result := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](context.Background(), bus,
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))

	// assert
	assert.True(t, result.IsFailure())
	assert.False(t, result.IsSuccess())
}

func Test_CommandHandler_RaceOnInsertIsFailureOutcome(t *testing.T) {
	// arrange
	store := &racingStore{}
	handler := registeraccount.NewCommandHandler(store, newHasher(t))

	// act
	result, err := handler.Handle(context.Background(),
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"username already exists"}, result.Errors())
}

func Test_CommandHandler_StoreErrorIsReturned(t *testing.T) {
	// arrange
	storeErr := errors.New("connection refused")
	handler := registeraccount.NewCommandHandler(&failingStore{err: storeErr}, newHasher(t))

	// act
	_, err := handler.Handle(context.Background(),
		registeraccount.BuildCommand("ayla", "ayla@example.com", "Sup3rSecret", time.Now()))

	// assert
	assert.ErrorIs(t, err, storeErr)
}

type countingStore struct {
	*memory.Store
	calls int
}

func (s *countingStore) AccountByUsername(ctx context.Context, username string) (core.Account, error) {
	s.calls++
	return s.Store.AccountByUsername(ctx, username)
}

type insertCountingStore struct {
	*memory.Store
	inserts int
}

func (s *insertCountingStore) InsertAccount(ctx context.Context, account core.Account) error {
	s.inserts++
	return s.Store.InsertAccount(ctx, account)
}

// racingStore reports the username as free but loses the insert to a concurrent registration.
type racingStore struct{}

func (racingStore) AccountByUsername(context.Context, string) (core.Account, error) {
	return core.Account{}, core.ErrNotFound
}

func (racingStore) InsertAccount(context.Context, core.Account) error {
	return core.ErrAlreadyExists
}

type failingStore struct {
	err error
}

func (s *failingStore) AccountByUsername(context.Context, string) (core.Account, error) {
	return core.Account{}, s.err
}

func (s *failingStore) InsertAccount(context.Context, core.Account) error {
	return s.err
}
