package createcharacter

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Store defines the repository operations needed by the CommandHandler.
type Store interface {
	AccountByID(ctx context.Context, id core.AccountID) (core.Account, error)
	CharactersByAccount(ctx context.Context, accountID core.AccountID) ([]core.Character, error)
	InsertCharacter(ctx context.Context, character core.Character) error
}

// CommandHandler runs the Load -> Decide -> Save workflow for Command.
type CommandHandler struct {
	store Store
	newID func() uuid.UUID
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithIDGenerator replaces uuid.New as the source of character IDs.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(h *CommandHandler) {
		h.newID = newID
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store Store, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store: store,
		newID: uuid.New,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle creates the character and returns its ID.
func (h CommandHandler) Handle(ctx context.Context, command Command) (outcome.Of[uuid.UUID], error) {
	s, err := h.load(ctx, command.AccountID)
	if err != nil {
		return outcome.Of[uuid.UUID]{}, err
	}

	result := Decide(s, command, h.newID())
	if result.IsFailure() {
		return outcome.FailureOf[uuid.UUID](result.Reason), nil
	}

	err = h.store.InsertCharacter(ctx, result.Change)
	if errors.Is(err, core.ErrAlreadyExists) {
		return outcome.FailureOf[uuid.UUID](failureReasonNameTaken), nil
	}

	if err != nil {
		return outcome.Of[uuid.UUID]{}, err
	}

	return outcome.SuccessOf(result.Change.ID)
}

func (h CommandHandler) load(ctx context.Context, accountID core.AccountID) (AccountState, error) {
	_, err := h.store.AccountByID(ctx, accountID)
	if errors.Is(err, core.ErrNotFound) {
		return AccountState{AccountExists: false}, nil
	}

	if err != nil {
		return AccountState{}, err
	}

	characters, err := h.store.CharactersByAccount(ctx, accountID)
	if err != nil {
		return AccountState{}, err
	}

	return AccountState{AccountExists: true, CharacterCount: len(characters)}, nil
}

// Module registers the handler and its input validation.
func Module(handler CommandHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandResultHandler[Command, uuid.UUID](b, handler)
		dispatch.RegisterCommandResultBehavior[Command, uuid.UUID](b, behaviors.ValidateRequest[Command, uuid.UUID](NewValidator()))

		return nil
	})
}
