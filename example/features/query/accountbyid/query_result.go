package accountbyid

import (
	"time"

	"github.com/google/uuid"
)

// AccountView is the public profile of an account.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
