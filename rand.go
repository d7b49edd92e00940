package main

import "math/rand/v2"

// Rand is a seedable random number generator. Everything random in the World
// comes from one of these, so that a World built from the same seed and
// stepped with the same inputs always ends up in the same state.
// Rand holds its state by value: copying a Rand produces an independent
// generator that will return the same sequence as the original.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if max < min {
		panic("RInt: max < min")
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

// RFloat returns a random float in [0, 1).
func (r *Rand) RFloat() float64 {
	return float64(r.pcg.Uint64()>>11) / (1 << 53)
}

// RCentered returns a random float in [-0.5, 0.5).
func (r *Rand) RCentered() float64 {
	return r.RFloat() - 0.5
}
