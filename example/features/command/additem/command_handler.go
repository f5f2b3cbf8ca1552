package additem

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Store defines the repository operations needed by the CommandHandler.
type Store interface {
	CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error)
	InventoryOfCharacter(ctx context.Context, characterID core.CharacterID) (core.Inventory, error)
	SaveInventoryItems(ctx context.Context, items ...core.InventoryItem) error
}

// CommandHandler runs the Load -> Decide -> Save workflow for Command.
// It does not retry by itself; concurrency conflicts are returned as errors.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle adds the items.
func (h CommandHandler) Handle(ctx context.Context, command Command) (outcome.Outcome, error) {
	characterExists := true

	_, err := h.store.CharacterByID(ctx, command.CharacterID)
	if errors.Is(err, core.ErrNotFound) {
		characterExists = false
	} else if err != nil {
		return outcome.Outcome{}, err
	}

	var inventory core.Inventory
	if characterExists {
		if inventory, err = h.store.InventoryOfCharacter(ctx, command.CharacterID); err != nil {
			return outcome.Outcome{}, err
		}
	}

	result := Decide(characterExists, inventory, command)
	if result.IsFailure() {
		return outcome.Failure(result.Reason), nil
	}

	if err = h.store.SaveInventoryItems(ctx, result.Change...); err != nil {
		return outcome.Outcome{}, err
	}

	return outcome.Success(), nil
}

// Module registers the handler and its input validation.
func Module(handler CommandHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandHandler[Command](b, handler)
		dispatch.RegisterCommandBehavior[Command](b, behaviors.ValidateCommand[Command](NewValidator()))

		return nil
	})
}
