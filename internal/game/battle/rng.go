package battle

import "math/rand/v2"

// RNG is the single source of randomness of a battle: accuracy rolls, critical-hit
// rolls, damage variance, secondary-effect chances, sleep/confusion lengths and
// speed ties all draw from it, so tests can inject an exact sequence.
type RNG interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRNG returns a seeded PCG generator.
func NewRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Roll reports whether a percent chance succeeds. Chances >= 100 always succeed and
// chances <= 0 always fail; neither consumes a random value.
func (l *Logic) Roll(percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return l.rng.IntN(100) < percent
}

// RandomRange returns a value in [lo, hi]. A single-value range consumes no random value.
func (l *Logic) RandomRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + l.rng.IntN(hi-lo+1)
}

// RNG exposes the battle random source to effects.
func (l *Logic) RNG() RNG { return l.rng }
