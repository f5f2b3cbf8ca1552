package core

import (
	"time"

	"github.com/google/uuid"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// AccountID identifies a player account.
type AccountID = uuid.UUID

// CharacterID identifies a character.
type CharacterID = uuid.UUID

// ItemID identifies an inventory slot.
type ItemID = uuid.UUID

// CreatedAt represents when an entity was created.
type CreatedAt = time.Time

// ToCreatedAt converts a time to CreatedAt with UTC normalization and microsecond precision,
// which is the precision Postgres stores.
func ToCreatedAt(t time.Time) CreatedAt {
	return t.UTC().Truncate(time.Microsecond)
}
