package accountbyid

import (
	"github.com/google/uuid"
)

const (
	queryType = "AccountByID"
)

// Query represents the intent to look up an account.
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
