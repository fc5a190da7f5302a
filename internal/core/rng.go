package core

import "math/rand/v2"

// Source yields uniform draws in [0, 1). Simulations take a Source rather
// than a concrete generator so tests can inject fixed sequences.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform draw in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Rand exposes the underlying rand.Rand for advanced use.
func (r *RNG) Rand() *rand.Rand { return r.r }
