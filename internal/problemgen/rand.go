package problemgen

import "math/rand/v2"

// Rand is the single source of randomness for question generation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a deterministic Rand for seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func coinFlip(r Rand) bool {
	return r.IntN(2) == 1
}
