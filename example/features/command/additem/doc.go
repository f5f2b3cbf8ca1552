// Package additem implements the Add Item to Inventory use case.
//
// Items are added to a character's inventory in stacks. Existing slots holding the same item with
// the same properties are filled up first, the rest opens new slots of at most 99 items each.
// All changed slots are saved together; a concurrent change to one of them surfaces as
// core.ErrConcurrencyConflict, which the dispatch pipeline retries.
package additem
