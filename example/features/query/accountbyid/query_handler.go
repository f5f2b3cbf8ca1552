package accountbyid

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const failureReasonNotFound = "account not found"

// Store defines the repository operations needed by the QueryHandler.
type Store interface {
	AccountByID(ctx context.Context, id core.AccountID) (core.Account, error)
}

// QueryHandler runs the Load -> Project workflow for Query.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle looks up the account.
func (h QueryHandler) Handle(ctx context.Context, query Query) (outcome.Of[AccountView], error) {
	if query.AccountID == uuid.Nil {
		return outcome.FailureOf[AccountView]("account id is required"), nil
	}

	account, err := h.store.AccountByID(ctx, query.AccountID)
	if errors.Is(err, core.ErrNotFound) {
		return outcome.FailureOf[AccountView](failureReasonNotFound), nil
	}

	if err != nil {
		return outcome.Of[AccountView]{}, err
	}

	return outcome.SuccessOf(ProjectAccountView(account))
}

// Module registers the handler.
func Module(handler QueryHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterQueryHandler[Query, AccountView](b, handler)
		return nil
	})
}
