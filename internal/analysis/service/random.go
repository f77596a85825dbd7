package service

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the filler metrics. Implementations must be safe for
// concurrent use.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a RandomSource seeded from the runtime's entropy.
func NewRandomSource() RandomSource {
	return NewSeededRandomSource(rand.Uint64(), rand.Uint64())
}

func NewSeededRandomSource(seed1, seed2 uint64) RandomSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
