package charactersbyaccount

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// CharacterView is the summary of one character.
type CharacterView struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Class      string         `json:"class"`
	Level      int            `json:"level"`
	Position   core.Position  `json:"position"`
	Region     string         `json:"region,omitempty"`
	Attributes map[string]int `json:"attributes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Characters represents the query result.
type Characters struct {
	AccountID  uuid.UUID       `json:"accountId"`
	Characters []CharacterView `json:"characters"`
	Count      int             `json:"count"`
}
