package rng

import (
	"math/rand"
	"time"
)

// Seeded is a deterministic generator backed by math/rand
type Seeded struct {
	seed int64
	rand *rand.Rand
}

// NewSeeded returns a Seeded generator
// If seed is 0, the current time is used
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
