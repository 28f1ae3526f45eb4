package sprites

import "math/rand/v2"

// Stream is the random source threaded through every generator call.
// *rand.Rand implements it. Tests can provide scripted implementations.
type Stream interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

var _ Stream = (*rand.Rand)(nil)

// NewStream returns a reproducible stream for seed.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandomStream returns a stream seeded from the runtime's entropy source.
func RandomStream() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
