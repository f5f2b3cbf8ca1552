package registeraccount

import (
	"time"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	commandType = "RegisterAccount"
)

// Command represents the intent to register a new player account.
type Command struct {
	Username   string
	Email      string
	Password   string
	OccurredAt core.CreatedAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(username, email, password string, occurredAt time.Time) Command {
	return Command{
		Username:   username,
		Email:      email,
		Password:   password,
		OccurredAt: core.ToCreatedAt(occurredAt),
	}
}
