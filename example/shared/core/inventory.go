package core

import (
	"maps"
)

const (
	// MaxStackSize is the largest quantity a single inventory slot can hold.
	MaxStackSize = 99

	// MaxInventorySlots is the number of slots a character's inventory has.
	MaxInventorySlots = 40
)

// InventoryItem is one inventory slot holding a stack of identical items.
// Items stack only when both the item code and the properties are equal.
type InventoryItem struct {
	ID          ItemID
	CharacterID CharacterID
	ItemCode    string
	Quantity    int
	Properties  map[string]string
	Version     int
}

// Inventory is the list of all slots of one character.
type Inventory []InventoryItem

// StacksWith reports whether more of the given item can be stacked onto this slot.
func (i InventoryItem) StacksWith(itemCode string, properties map[string]string) bool {
	return i.ItemCode == itemCode && maps.Equal(i.Properties, properties) && i.Quantity < MaxStackSize
}

// TotalQuantity sums the quantity of all slots holding the given item code.
func (inv Inventory) TotalQuantity(itemCode string) int {
	total := 0
	for _, item := range inv {
		if item.ItemCode == itemCode {
			total += item.Quantity
		}
	}

	return total
}

// Stack distributes quantity onto existing slots that stack with the item first and
// opens new slots for the rest, each holding at most MaxStackSize.
// It returns the changed and the new slots; new slots have a zero ID and Version.
// ok is false when the inventory does not have enough free slots.
func (inv Inventory) Stack(
	characterID CharacterID,
	itemCode string,
	quantity int,
	properties map[string]string,
) (changed Inventory, ok bool) {
	remaining := quantity

	for _, item := range inv {
		if remaining <= 0 {
			break
		}

		if !item.StacksWith(itemCode, properties) {
			continue
		}

		added := min(MaxStackSize-item.Quantity, remaining)
		item.Quantity += added
		remaining -= added
		changed = append(changed, item)
	}

	freeSlots := MaxInventorySlots - len(inv)
	for remaining > 0 {
		if freeSlots == 0 {
			return nil, false
		}

		added := min(MaxStackSize, remaining)
		changed = append(changed, InventoryItem{
			CharacterID: characterID,
			ItemCode:    itemCode,
			Quantity:    added,
			Properties:  maps.Clone(properties),
		})
		remaining -= added
		freeSlots--
	}

	return changed, true
}
