package inventoryofcharacter

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const failureReasonCharacterNotFound = "character not found"

// Store defines the repository operations needed by the QueryHandler.
type Store interface {
	CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error)
	InventoryOfCharacter(ctx context.Context, characterID core.CharacterID) (core.Inventory, error)
}

// QueryHandler runs the Load -> Project workflow for Query.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle loads the inventory. An unknown character is a failure, an empty inventory is not.
func (h QueryHandler) Handle(ctx context.Context, query Query) (outcome.Of[InventoryView], error) {
	_, err := h.store.CharacterByID(ctx, query.CharacterID)
	if errors.Is(err, core.ErrNotFound) {
		return outcome.FailureOf[InventoryView](failureReasonCharacterNotFound), nil
	}

	if err != nil {
		return outcome.Of[InventoryView]{}, err
	}

	inventory, err := h.store.InventoryOfCharacter(ctx, query.CharacterID)
	if err != nil {
		return outcome.Of[InventoryView]{}, err
	}

	return outcome.SuccessOf(ProjectInventoryView(inventory, query))
}

// Module registers the handler.
func Module(handler QueryHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterQueryHandler[Query, InventoryView](b, handler)
		return nil
	})
}
