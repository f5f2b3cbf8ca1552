package registeraccount

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// AccountStore defines the repository operations needed by the CommandHandler.
type AccountStore interface {
	AccountByUsername(ctx context.Context, username string) (core.Account, error)
	InsertAccount(ctx context.Context, account core.Account) error
}

// PasswordHasher hashes plain-text passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// CommandHandler runs the Load -> Decide -> Save workflow for Command.
type CommandHandler struct {
	store  AccountStore
	hasher PasswordHasher
	newID  func() uuid.UUID
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithIDGenerator replaces uuid.New as the source of account IDs.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(h *CommandHandler) {
		h.newID = newID
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store AccountStore, hasher PasswordHasher, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:  store,
		hasher: hasher,
		newID:  uuid.New,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle registers the account and returns its ID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (outcome.Of[uuid.UUID], error) {
	_, err := h.store.AccountByUsername(ctx, command.Username)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return outcome.Of[uuid.UUID]{}, err
	}

	usernameTaken := err == nil

	var passwordHash string
	if !usernameTaken {
		if passwordHash, err = h.hasher.Hash(command.Password); err != nil {
			return outcome.Of[uuid.UUID]{}, err
		}
	}

	result := Decide(usernameTaken, command, h.newID(), passwordHash)
	if result.IsFailure() {
		return outcome.FailureOf[uuid.UUID](result.Reason), nil
	}

	err = h.store.InsertAccount(ctx, result.Change)
	if errors.Is(err, core.ErrAlreadyExists) {
		return outcome.FailureOf[uuid.UUID](failureReasonUsernameTaken), nil
	}

	if err != nil {
		return outcome.Of[uuid.UUID]{}, err
	}

	return outcome.SuccessOf(result.Change.ID)
}

// Module registers the handler and its validation, which checks the input and the username availability.
// The handler still decides on a taken username for registrations racing past the validation.
func Module(handler CommandHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandResultHandler[Command, uuid.UUID](b, handler)
		dispatch.RegisterCommandResultBehavior[Command, uuid.UUID](b,
			behaviors.ValidateRequest[Command, uuid.UUID](NewCommandValidator(handler.store)))

		return nil
	})
}
