package core

import (
	"time"
)

// Account is a registered player account.
type Account struct {
	ID           AccountID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    CreatedAt
}

// BuildAccount creates a new Account.
func BuildAccount(id AccountID, username, email, passwordHash string, createdAt time.Time) Account {
	return Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    ToCreatedAt(createdAt),
	}
}
