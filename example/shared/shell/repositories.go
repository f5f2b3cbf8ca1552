package shell

import (
	"context"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// AccountRepository stores player accounts.
// InsertAccount returns core.ErrAlreadyExists when the username is taken,
// the lookups return core.ErrNotFound for unknown accounts.
type AccountRepository interface {
	InsertAccount(ctx context.Context, account core.Account) error
	AccountByID(ctx context.Context, id core.AccountID) (core.Account, error)
	AccountByUsername(ctx context.Context, username string) (core.Account, error)
}

// CharacterRepository stores characters.
// InsertCharacter returns core.ErrAlreadyExists when the character name is taken.
// UpdateCharacter treats character.Version as the expected stored version and returns
// core.ErrConcurrencyConflict when it does not match.
type CharacterRepository interface {
	InsertCharacter(ctx context.Context, character core.Character) error
	CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error)
	CharactersByAccount(ctx context.Context, accountID core.AccountID) ([]core.Character, error)
	UpdateCharacter(ctx context.Context, character core.Character) error
}

// InventoryRepository stores inventory slots.
// SaveInventoryItems inserts slots with a zero Version and updates the others with the same
// optimistic concurrency check as UpdateCharacter. All slots are saved or none.
type InventoryRepository interface {
	InventoryOfCharacter(ctx context.Context, characterID core.CharacterID) (core.Inventory, error)
	SaveInventoryItems(ctx context.Context, items ...core.InventoryItem) error
}

// Store combines all repositories. Both the memory and the SQL implementation satisfy it.
type Store interface {
	AccountRepository
	CharacterRepository
	InventoryRepository
}
