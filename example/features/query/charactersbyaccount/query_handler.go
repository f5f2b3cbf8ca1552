package charactersbyaccount

import (
	"context"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Store defines the repository operations needed by the QueryHandler.
type Store interface {
	CharactersByAccount(ctx context.Context, accountID core.AccountID) ([]core.Character, error)
}

// QueryHandler runs the Load -> Project workflow for Query.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle lists the characters.
func (h QueryHandler) Handle(ctx context.Context, query Query) (outcome.Of[Characters], error) {
	characters, err := h.store.CharactersByAccount(ctx, query.AccountID)
	if err != nil {
		return outcome.Of[Characters]{}, err
	}

	return outcome.SuccessOf(ProjectCharacters(characters, query))
}

// Module registers the handler.
func Module(handler QueryHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterQueryHandler[Query, Characters](b, handler)
		return nil
	})
}
