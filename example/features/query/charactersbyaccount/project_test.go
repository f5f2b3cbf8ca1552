package charactersbyaccount_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/example/features/query/charactersbyaccount"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

func Test_ProjectCharacters_ResolvesRegions(t *testing.T) {
	// arrange
	accountID := uuid.New()
	inHaven := core.BuildCharacter(uuid.New(), accountID, "Brom", core.ClassWarrior, core.SpawnPosition, time.Now())
	inWilderness := core.BuildCharacter(uuid.New(), accountID, "Yara", core.ClassMage, core.Position{X: 500, Y: 500}, time.Now())

	// act
	result := charactersbyaccount.ProjectCharacters([]core.Character{inHaven, inWilderness}, charactersbyaccount.BuildQuery(accountID))

	// assert
	require.Len(t, result.Characters, 2)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "haven", result.Characters[0].Region)
	assert.Empty(t, result.Characters[1].Region)
	assert.Equal(t, "Yara", result.Characters[1].Name)
}

func Test_ProjectCharacters_EmptyHistoryGivesEmptyList(t *testing.T) {
	result := charactersbyaccount.ProjectCharacters(nil, charactersbyaccount.BuildQuery(uuid.New()))

	assert.NotNil(t, result.Characters)
	assert.Zero(t, result.Count)
}
