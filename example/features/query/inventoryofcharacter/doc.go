// Package inventoryofcharacter implements the Inventory Of Character query use case.
//
// The query returns all inventory slots of a character together with the number of items
// carried and the number of slots still free.
// The query validates itself: a missing character id is rejected by the validation behavior.
package inventoryofcharacter
