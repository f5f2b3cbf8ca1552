package inventoryofcharacter

import (
	"github.com/google/uuid"
)

// SlotView is one inventory slot.
type SlotView struct {
	ItemID     uuid.UUID         `json:"itemId"`
	ItemCode   string            `json:"itemCode"`
	Quantity   int               `json:"quantity"`
	Properties map[string]string `json:"properties,omitempty"`
}

// InventoryView represents the query result.
type InventoryView struct {
	CharacterID uuid.UUID  `json:"characterId"`
	Slots       []SlotView `json:"slots"`
	TotalItems  int        `json:"totalItems"`
	FreeSlots   int        `json:"freeSlots"`
}
