package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// Store keeps all entities in maps guarded by a single RWMutex.
// Entities are copied on the way in and out, so callers never share state with the store.
type Store struct {
	mu         sync.RWMutex
	accounts   map[core.AccountID]core.Account
	usernames  map[string]core.AccountID
	characters map[core.CharacterID]core.Character
	names      map[string]core.CharacterID
	items      map[core.ItemID]core.InventoryItem
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[core.AccountID]core.Account),
		usernames:  make(map[string]core.AccountID),
		characters: make(map[core.CharacterID]core.Character),
		names:      make(map[string]core.CharacterID),
		items:      make(map[core.ItemID]core.InventoryItem),
	}
}

// InsertAccount stores a new account.
func (s *Store) InsertAccount(ctx context.Context, account core.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[account.Username]; taken {
		return fmt.Errorf("insert account %q: %w", account.Username, core.ErrAlreadyExists)
	}

	if _, exists := s.accounts[account.ID]; exists {
		return fmt.Errorf("insert account %s: %w", account.ID, core.ErrAlreadyExists)
	}

	s.accounts[account.ID] = account
	s.usernames[account.Username] = account.ID

	return nil
}

// AccountByID loads an account.
func (s *Store) AccountByID(ctx context.Context, id core.AccountID) (core.Account, error) {
	if err := ctx.Err(); err != nil {
		return core.Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return core.Account{}, fmt.Errorf("account %s: %w", id, core.ErrNotFound)
	}

	return account, nil
}

// AccountByUsername loads an account by its unique username.
func (s *Store) AccountByUsername(ctx context.Context, username string) (core.Account, error) {
	if err := ctx.Err(); err != nil {
		return core.Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return core.Account{}, fmt.Errorf("account %q: %w", username, core.ErrNotFound)
	}

	return s.accounts[id], nil
}

// InsertCharacter stores a new character with version 1.
func (s *Store) InsertCharacter(ctx context.Context, character core.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.names[character.Name]; taken {
		return fmt.Errorf("insert character %q: %w", character.Name, core.ErrAlreadyExists)
	}

	if _, exists := s.characters[character.ID]; exists {
		return fmt.Errorf("insert character %s: %w", character.ID, core.ErrAlreadyExists)
	}

	character.Version = 1
	s.characters[character.ID] = cloneCharacter(character)
	s.names[character.Name] = character.ID

	return nil
}

// CharacterByID loads a character.
func (s *Store) CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error) {
	if err := ctx.Err(); err != nil {
		return core.Character{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	character, ok := s.characters[id]
	if !ok {
		return core.Character{}, fmt.Errorf("character %s: %w", id, core.ErrNotFound)
	}

	return cloneCharacter(character), nil
}

// CharactersByAccount lists the characters of an account ordered by creation time and name.
func (s *Store) CharactersByAccount(ctx context.Context, accountID core.AccountID) ([]core.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	characters := make([]core.Character, 0)
	for _, c := range s.characters {
		if c.AccountID == accountID {
			characters = append(characters, cloneCharacter(c))
		}
	}

	slices.SortFunc(characters, func(a, b core.Character) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.Name, b.Name))
	})

	return characters, nil
}

// UpdateCharacter saves a character if its version matches the stored one.
func (s *Store) UpdateCharacter(ctx context.Context, character core.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.characters[character.ID]
	if !ok {
		return fmt.Errorf("update character %s: %w", character.ID, core.ErrNotFound)
	}

	if stored.Version != character.Version {
		return fmt.Errorf("update character %s: %w", character.ID, core.ErrConcurrencyConflict)
	}

	character.Version++
	s.characters[character.ID] = cloneCharacter(character)

	return nil
}

// InventoryOfCharacter lists all slots of a character ordered by item code and quantity.
func (s *Store) InventoryOfCharacter(ctx context.Context, characterID core.CharacterID) (core.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	inventory := make(core.Inventory, 0)
	for _, item := range s.items {
		if item.CharacterID == characterID {
			inventory = append(inventory, cloneItem(item))
		}
	}

	slices.SortFunc(inventory, func(a, b core.InventoryItem) int {
		return cmp.Or(
			cmp.Compare(a.ItemCode, b.ItemCode),
			cmp.Compare(b.Quantity, a.Quantity),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return inventory, nil
}

// SaveInventoryItems inserts new slots and updates existing ones atomically.
// New slots without an ID get a fresh one.
func (s *Store) SaveInventoryItems(ctx context.Context, items ...core.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if item.Version == 0 {
			continue
		}

		stored, ok := s.items[item.ID]
		if !ok {
			return fmt.Errorf("update inventory item %s: %w", item.ID, core.ErrNotFound)
		}

		if stored.Version != item.Version {
			return fmt.Errorf("update inventory item %s: %w", item.ID, core.ErrConcurrencyConflict)
		}
	}

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}

		item.Version++
		s.items[item.ID] = cloneItem(item)
	}

	return nil
}

func cloneCharacter(c core.Character) core.Character {
	c.Attributes = maps.Clone(c.Attributes)
	return c
}

func cloneItem(i core.InventoryItem) core.InventoryItem {
	i.Properties = maps.Clone(i.Properties)
	return i
}
