package inventoryofcharacter

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/validation"
)

const (
	queryType = "InventoryOfCharacter"
)

// Query represents the intent to look into a character's inventory.
type Query struct {
	CharacterID uuid.UUID
}

// BuildQuery creates a new Query with the provided character ID.
func BuildQuery(characterID uuid.UUID) Query {
	return Query{
		CharacterID: characterID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Validate implements validation.SelfValidating.
func (q Query) Validate(ctx context.Context) (validation.Result, error) {
	return validation.New(
		validation.Must("characterId", func(query Query) bool { return query.CharacterID != uuid.Nil }, "character id is required"),
	).ValidateContext(ctx, q)
}
