package additem

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	failureReasonCharacterNotFound = "character does not exist"
	failureReasonInventoryFull     = "inventory is full"
)

// Decide implements the business logic to determine how items are stacked into an inventory.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An existing character and its inventory
//	WHEN: AddItem command is received
//	THEN: Matching slots are filled up to 99 first, the rest goes into new slots
//	FAILURE: "character does not exist" if the character is unknown
//	FAILURE: "inventory is full" if not enough free slots are left (nothing is added)
func Decide(characterExists bool, inventory core.Inventory, command Command) core.DecisionResult[core.Inventory] {
	if !characterExists {
		return core.FailureDecision[core.Inventory](failureReasonCharacterNotFound)
	}

	changed, ok := inventory.Stack(command.CharacterID, command.ItemCode, command.Quantity, command.Properties)
	if !ok {
		return core.FailureDecision[core.Inventory](failureReasonInventoryFull)
	}

	return core.SuccessDecision(changed)
}
