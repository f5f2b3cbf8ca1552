package movecharacter

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// MoveResult describes where a character ended up.
// Region is empty in the wilderness between regions.
type MoveResult struct {
	Position  core.Position `json:"position"`
	Region    string        `json:"region,omitempty"`
	Encounter bool          `json:"encounter"`
}
