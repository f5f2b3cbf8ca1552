package shell

import (
	"errors"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

var (
	// ErrInvalidBcryptCost is returned when the bcrypt cost is outside the range bcrypt accepts.
	ErrInvalidBcryptCost = errors.New("bcrypt cost is out of range")
)

// IsRetryable classifies errors worth retrying a whole command for.
// Only concurrency conflicts qualify: a fresh load will see the competing change.
func IsRetryable(err error) bool {
	return errors.Is(err, core.ErrConcurrencyConflict)
}
