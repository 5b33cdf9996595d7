package uploader

import (
	"math/rand/v2"
	"sync"
)

// ProgressSource yields the increment applied to a pending upload on every tick.
type ProgressSource interface {
	Next() float64
}

type randomSource struct {
	mu  sync.Mutex
	max float64
}

// NewRandomSource returns increments drawn uniformly from [0, max).
func NewRandomSource(max float64) ProgressSource {
	return &randomSource{max: max}
}

func (s *randomSource) Next() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.Float64() * s.max
}

// FixedSource always yields the same increment.
type FixedSource float64

func (f FixedSource) Next() float64 { return float64(f) }
