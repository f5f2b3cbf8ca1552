package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

func Test_Inventory_Stack_FillsExistingSlotFirst(t *testing.T) {
	// arrange
	characterID := uuid.New()
	slotID := uuid.New()
	inv := core.Inventory{
		{ID: slotID, CharacterID: characterID, ItemCode: "potion", Quantity: 90, Version: 3},
	}

	// act
	changed, ok := inv.Stack(characterID, "potion", 15, nil)

	// assert
	require.True(t, ok)
	require.Len(t, changed, 2)
	assert.Equal(t, slotID, changed[0].ID)
	assert.Equal(t, core.MaxStackSize, changed[0].Quantity)
	assert.Equal(t, 3, changed[0].Version)
	assert.Equal(t, uuid.Nil, changed[1].ID)
	assert.Equal(t, 6, changed[1].Quantity)
}

func Test_Inventory_Stack_SkipsFullSlots(t *testing.T) {
	// arrange
	characterID := uuid.New()
	fullID := uuid.New()
	partialID := uuid.New()
	inv := core.Inventory{
		{ID: fullID, CharacterID: characterID, ItemCode: "arrow", Quantity: core.MaxStackSize, Version: 2},
		{ID: partialID, CharacterID: characterID, ItemCode: "arrow", Quantity: core.MaxStackSize - 1, Version: 1},
	}

	// act
	changed, ok := inv.Stack(characterID, "arrow", 5, nil)

	// assert
	require.True(t, ok)
	require.Len(t, changed, 2)
	assert.Equal(t, partialID, changed[0].ID)
	assert.Equal(t, core.MaxStackSize, changed[0].Quantity)
	assert.Equal(t, uuid.Nil, changed[1].ID)
	assert.Equal(t, 4, changed[1].Quantity)
	for _, item := range changed {
		assert.NotEqual(t, fullID, item.ID)
	}
}

func Test_Inventory_Stack_NothingToStackChangesNothing(t *testing.T) {
	inv := core.Inventory{{ID: uuid.New(), ItemCode: "arrow", Quantity: 10}}

	changed, ok := inv.Stack(uuid.New(), "arrow", 0, nil)

	assert.True(t, ok)
	assert.Empty(t, changed)
}

func Test_Inventory_Stack_DifferentPropertiesDoNotStack(t *testing.T) {
	// arrange
	characterID := uuid.New()
	inv := core.Inventory{
		{ID: uuid.New(), CharacterID: characterID, ItemCode: "sword", Quantity: 1, Properties: map[string]string{"rarity": "common"}},
	}

	// act
	changed, ok := inv.Stack(characterID, "sword", 1, map[string]string{"rarity": "epic"})

	// assert
	require.True(t, ok)
	require.Len(t, changed, 1)
	assert.Equal(t, uuid.Nil, changed[0].ID)
	assert.Equal(t, "epic", changed[0].Properties["rarity"])
	assert.Equal(t, 2, append(inv, changed...).TotalQuantity("sword"))
}

func Test_Inventory_Stack_FailsWhenInventoryIsFull(t *testing.T) {
	// arrange
	characterID := uuid.New()
	inv := make(core.Inventory, 0, core.MaxInventorySlots)
	for range core.MaxInventorySlots {
		inv = append(inv, core.InventoryItem{ID: uuid.New(), ItemCode: "rock", Quantity: core.MaxStackSize})
	}

	// act
	changed, ok := inv.Stack(characterID, "rock", 1, nil)

	// assert
	assert.False(t, ok)
	assert.Nil(t, changed)
}
