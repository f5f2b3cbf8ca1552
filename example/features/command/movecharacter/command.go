package movecharacter

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	commandType = "MoveCharacter"
)

// Command represents the intent to move a character to a destination on the world map.
type Command struct {
	CharacterID uuid.UUID
	Destination core.Position
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(characterID uuid.UUID, x, y float64) Command {
	return Command{
		CharacterID: characterID,
		Destination: core.Position{X: x, Y: y},
	}
}
