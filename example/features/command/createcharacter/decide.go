package createcharacter

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	failureReasonAccountNotFound   = "account does not exist"
	failureReasonTooManyCharacters = "account already has the maximum number of characters"
	failureReasonNameTaken         = "character name already taken"
)

// AccountState is what the decision needs to know about the owning account.
type AccountState struct {
	AccountExists  bool
	CharacterCount int
}

// Decide implements the business logic to determine whether a character can be created.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An existing account with fewer than 5 characters
//	WHEN: CreateCharacter command is received
//	THEN: A level one character of the requested class is created at the spawn position
//	FAILURE: "account does not exist" if the account is unknown
//	FAILURE: "account already has the maximum number of characters" if it already owns 5
func Decide(s AccountState, command Command, characterID core.CharacterID) core.DecisionResult[core.Character] {
	if !s.AccountExists {
		return core.FailureDecision[core.Character](failureReasonAccountNotFound)
	}

	if s.CharacterCount >= core.MaxCharactersPerAccount {
		return core.FailureDecision[core.Character](failureReasonTooManyCharacters)
	}

	return core.SuccessDecision(core.BuildCharacter(
		characterID,
		command.AccountID,
		command.Name,
		command.Class,
		core.SpawnPosition,
		command.OccurredAt,
	))
}
