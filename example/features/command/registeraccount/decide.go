package registeraccount

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

const (
	failureReasonUsernameTaken = "username already exists"
)

// Decide implements the business logic to determine whether an account can be registered.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A username that is not taken yet
//	WHEN: RegisterAccount command is received
//	THEN: A new account with the given ID and password hash is created
//	FAILURE: "username already exists" if another account uses the username
func Decide(usernameTaken bool, command Command, accountID core.AccountID, passwordHash string) core.DecisionResult[core.Account] {
	if usernameTaken {
		return core.FailureDecision[core.Account](failureReasonUsernameTaken)
	}

	return core.SuccessDecision(core.BuildAccount(
		accountID,
		command.Username,
		command.Email,
		passwordHash,
		command.OccurredAt,
	))
}
