package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the selectors draw from.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a PCG-backed source. Every seed, zero included, is reproducible.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromClock seeds a source from the wall clock.
func FromClock() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Seeded returns New(*seed), or a clock-seeded source when seed is nil.
func Seeded(seed *uint64) *rand.Rand {
	if seed == nil {
		return FromClock()
	}
	return New(*seed)
}
