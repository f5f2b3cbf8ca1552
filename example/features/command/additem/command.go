package additem

import (
	"maps"

	"github.com/google/uuid"
)

const (
	commandType = "AddItem"
)

// Command represents the intent to add items to a character's inventory.
// Properties is an optional bag of item properties such as rarity or enchantments.
type Command struct {
	CharacterID uuid.UUID
	ItemCode    string
	Quantity    int
	Properties  map[string]string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(characterID uuid.UUID, itemCode string, quantity int, properties map[string]string) Command {
	return Command{
		CharacterID: characterID,
		ItemCode:    itemCode,
		Quantity:    quantity,
		Properties:  maps.Clone(properties),
	}
}
