package charactersbyaccount

import (
	"maps"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// ProjectCharacters implements the query logic to summarize the characters of an account.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The stored characters of an account in creation order
//	WHEN: CharactersByAccount query is executed
//	THEN: Characters is returned, keeping the order
//	INCLUDES: The code of the region a character stands in, if any
func ProjectCharacters(characters []core.Character, query Query) Characters {
	views := make([]CharacterView, 0, len(characters))

	for _, c := range characters {
		view := CharacterView{
			ID:         c.ID,
			Name:       c.Name,
			Class:      c.Class,
			Level:      c.Level,
			Position:   c.Position,
			Attributes: maps.Clone(c.Attributes),
			CreatedAt:  c.CreatedAt,
		}

		if region, ok := core.RegionAt(c.Position); ok {
			view.Region = region.Code
		}

		views = append(views, view)
	}

	return Characters{
		AccountID:  query.AccountID,
		Characters: views,
		Count:      len(views),
	}
}
