package charactersbyaccount

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/validation"
)

const (
	queryType = "CharactersByAccount"
)

// Query represents the intent to list the characters of an account.
type Query struct {
	AccountID uuid.UUID
}

// BuildQuery creates a new Query with the provided account ID.
func BuildQuery(accountID uuid.UUID) Query {
	return Query{
		AccountID: accountID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Validate implements validation.SelfValidating.
func (q Query) Validate(ctx context.Context) (validation.Result, error) {
	return validation.New(
		validation.Must("accountId", func(query Query) bool { return query.AccountID != uuid.Nil }, "account id is required"),
	).ValidateContext(ctx, q)
}
