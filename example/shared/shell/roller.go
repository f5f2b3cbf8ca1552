package shell

import (
	"math/rand/v2"
)

// RandomRoller rolls with the global math/rand/v2 source, which is safe for concurrent use.
type RandomRoller struct{}

// Float64 returns a random number in [0.0, 1.0).
func (RandomRoller) Float64() float64 {
	return rand.Float64() //nolint:gosec // game rolls, not security
}
