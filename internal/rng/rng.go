package rng

import (
	"crypto/rand"
	"math/big"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

var (
	_ Generator = Crypto{}
	_ Generator = (*Seeded)(nil)
)

// Crypto is a Generator backed by crypto/rand, used when a game is not seeded
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// New returns a seeded generator when seed > 0, otherwise a crypto generator
func New(seed int64) Generator {
	if seed > 0 {
		return NewSeeded(seed)
	}

	return Crypto{}
}
