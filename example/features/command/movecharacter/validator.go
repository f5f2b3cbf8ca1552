package movecharacter

import (
	"math"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/validation"
)

// WorldBound is the largest absolute coordinate on the world map.
const WorldBound = 1000.0

// NewValidator declares the input rules for Command.
func NewValidator() *validation.RuleSet[Command] {
	return validation.New(
		validation.Must("characterId", func(c Command) bool { return c.CharacterID != uuid.Nil }, "character id is required"),
		validation.Matches("destination.x", func(c Command) float64 { return c.Destination.X }, onMap,
			"destination must lie on the world map"),
		validation.Matches("destination.y", func(c Command) float64 { return c.Destination.Y }, onMap,
			"destination must lie on the world map"),
	)
}

func onMap(v float64) bool {
	return !math.IsNaN(v) && v >= -WorldBound && v <= WorldBound
}
