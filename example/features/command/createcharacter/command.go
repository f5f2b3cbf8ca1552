package createcharacter

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	commandType = "CreateCharacter"
)

// Command represents the intent to create a new character for an account.
type Command struct {
	AccountID  uuid.UUID
	Name       string
	Class      string
	OccurredAt core.CreatedAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(accountID uuid.UUID, name, class string, occurredAt time.Time) Command {
	return Command{
		AccountID:  accountID,
		Name:       name,
		Class:      class,
		OccurredAt: core.ToCreatedAt(occurredAt),
	}
}
