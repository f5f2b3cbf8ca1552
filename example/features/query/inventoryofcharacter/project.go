package inventoryofcharacter

import (
	"maps"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// ProjectInventoryView implements the query logic to summarize an inventory.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The stored slots of a character
//	WHEN: InventoryOfCharacter query is executed
//	THEN: InventoryView is returned with the slots in stored order
//	INCLUDES: The total number of items and the number of free slots
func ProjectInventoryView(inventory core.Inventory, query Query) InventoryView {
	slots := make([]SlotView, 0, len(inventory))
	total := 0

	for _, item := range inventory {
		slots = append(slots, SlotView{
			ItemID:     item.ID,
			ItemCode:   item.ItemCode,
			Quantity:   item.Quantity,
			Properties: maps.Clone(item.Properties),
		})
		total += item.Quantity
	}

	return InventoryView{
		CharacterID: query.CharacterID,
		Slots:       slots,
		TotalItems:  total,
		FreeSlots:   max(core.MaxInventorySlots-len(inventory), 0),
	}
}
