package accountbyid

import (
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

// ProjectAccountView maps a stored account to its public profile.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A stored account
//	WHEN: AccountByID query is executed
//	THEN: AccountView is returned
//	EXCLUDES: The password hash
func ProjectAccountView(account core.Account) AccountView {
	return AccountView{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
