package util

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomState generates a random normalized state vector of 2^n
// amplitudes for n qubit indices.
func (r *RNG) GenerateRandomState(n int) []complex128 {
	state := make([]complex128, 1<<n)

	var norm float64
	for i := range state {
		amp := complex(r.rand.NormFloat64(), r.rand.NormFloat64())
		state[i] = amp
		norm += real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i := range state {
		state[i] *= scale
	}

	return state
}

// GenerateRandomPhases generates n random phase factors e^(i*theta) with
// theta uniform in [0, 2*pi).
func (r *RNG) GenerateRandomPhases(n int) []complex128 {
	phases := make([]complex128, n)
	for i := range phases {
		phases[i] = cmplx.Exp(complex(0, 2*math.Pi*r.rand.Float64()))
	}
	return phases
}
