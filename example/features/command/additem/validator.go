package additem

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/validation"
)

const (
	maxItemCodeLength = 64
	maxProperties     = 8
)

// NewValidator declares the input rules for Command.
func NewValidator() *validation.RuleSet[Command] {
	quantity := func(c Command) int { return c.Quantity }

	return validation.New(
		validation.Must("characterId", func(c Command) bool { return c.CharacterID != uuid.Nil }, "character id is required"),
		validation.NotEmpty("itemCode", func(c Command) string { return c.ItemCode }, "item code is required"),
		validation.Must("itemCode", func(c Command) bool { return utf8.RuneCountInString(c.ItemCode) <= maxItemCodeLength },
			"item code must be at most 64 characters"),
		validation.Matches("quantity", quantity, validation.InRange(1, core.MaxStackSize),
			"quantity must be between 1 and 99"),
		validation.Must("properties", func(c Command) bool { return len(c.Properties) <= maxProperties },
			"an item can have at most 8 properties"),
		validation.Must("properties", func(c Command) bool {
			for key := range c.Properties {
				if key == "" {
					return false
				}
			}

			return true
		}, "property names must not be empty"),
	)
}
