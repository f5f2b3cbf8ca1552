package movecharacter

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	failureReasonCharacterNotFound = "character does not exist"
	failureReasonTooFar            = "destination is too far away"
)

// Decide implements the business logic to determine whether a character can travel to a destination.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An existing character
//	WHEN: MoveCharacter command is received
//	THEN: The character is moved to the destination
//	IDEMPOTENCY: The destination is the current position (no state change)
//	FAILURE: "character does not exist" if the character is unknown
//	FAILURE: "destination is too far away" if the distance exceeds maxStep
func Decide(characterExists bool, character core.Character, command Command, maxStep float64) core.DecisionResult[core.Character] {
	if !characterExists {
		return core.FailureDecision[core.Character](failureReasonCharacterNotFound)
	}

	if character.Position == command.Destination {
		return core.IdempotentDecision[core.Character]()
	}

	if !core.CanTravel(character.Position, command.Destination, maxStep) {
		return core.FailureDecision[core.Character](failureReasonTooFar)
	}

	return core.SuccessDecision(character.MovedTo(command.Destination))
}
