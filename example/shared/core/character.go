package core

import (
	"maps"
	"slices"
	"time"
)

const (
	// MaxCharactersPerAccount is the number of characters a single account may own.
	MaxCharactersPerAccount = 5

	// StartingLevel is the level of a freshly created character.
	StartingLevel = 1

	ClassWarrior = "warrior"
	ClassMage    = "mage"
	ClassRogue   = "rogue"
	ClassCleric  = "cleric"
	ClassRanger  = "ranger"

	AttrStrength     = "strength"
	AttrDexterity    = "dexterity"
	AttrIntelligence = "intelligence"
	AttrVitality     = "vitality"
)

// CharacterClasses lists the playable classes in display order.
var CharacterClasses = []string{ClassWarrior, ClassMage, ClassRogue, ClassCleric, ClassRanger}

var startingAttributes = map[string]map[string]int{
	ClassWarrior: {AttrStrength: 8, AttrDexterity: 4, AttrIntelligence: 2, AttrVitality: 7},
	ClassMage:    {AttrStrength: 2, AttrDexterity: 4, AttrIntelligence: 9, AttrVitality: 4},
	ClassRogue:   {AttrStrength: 4, AttrDexterity: 9, AttrIntelligence: 4, AttrVitality: 4},
	ClassCleric:  {AttrStrength: 4, AttrDexterity: 3, AttrIntelligence: 7, AttrVitality: 6},
	ClassRanger:  {AttrStrength: 5, AttrDexterity: 7, AttrIntelligence: 4, AttrVitality: 5},
}

// Character is a playable character owned by an account.
// Version is used for optimistic concurrency control and is managed by the repositories.
type Character struct {
	ID         CharacterID
	AccountID  AccountID
	Name       string
	Class      string
	Level      int
	Position   Position
	Attributes map[string]int
	Version    int
	CreatedAt  CreatedAt
}

// IsCharacterClass reports whether class is a playable class.
func IsCharacterClass(class string) bool {
	return slices.Contains(CharacterClasses, class)
}

// StartingAttributes returns a fresh copy of the base attributes for a class.
// Unknown classes get an empty map.
func StartingAttributes(class string) map[string]int {
	base, ok := startingAttributes[class]
	if !ok {
		return map[string]int{}
	}

	return maps.Clone(base)
}

// BuildCharacter creates a new level one character at the given spawn position.
func BuildCharacter(
	id CharacterID,
	accountID AccountID,
	name string,
	class string,
	spawn Position,
	createdAt time.Time,
) Character {
	return Character{
		ID:         id,
		AccountID:  accountID,
		Name:       name,
		Class:      class,
		Level:      StartingLevel,
		Position:   spawn,
		Attributes: StartingAttributes(class),
		CreatedAt:  ToCreatedAt(createdAt),
	}
}

// MovedTo returns a copy of the character at the new position.
func (c Character) MovedTo(p Position) Character {
	moved := c
	moved.Attributes = maps.Clone(c.Attributes)
	moved.Position = p

	return moved
}
