package services

import (
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

// RandomSource is the injectable randomness behind fallback and emotion synthesis.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe PCG source. A zero seed draws a random one.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewKeyedRandomSource is seeded from key, so the same key always yields the same sequence.
func NewKeyedRandomSource(key string) RandomSource {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	seed := h.Sum64()
	if seed == 0 {
		seed = 1
	}
	return NewRandomSource(seed)
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

// uniform draws from [lo, hi).
func uniform(r RandomSource, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intBetween draws from [lo, hi] inclusive.
func intBetween(r RandomSource, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func pick[T any](r RandomSource, items []T) T {
	return items[r.IntN(len(items))]
}
