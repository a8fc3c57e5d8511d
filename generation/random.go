package generation

import (
	"math/rand"
	"time"
)

// RandomSource draws uniform integers. Range returns a value in [min, max);
// when max <= min it returns min.
type RandomSource interface {
	Range(min, max int) int
}

// randSource adapts *rand.Rand to RandomSource
type randSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a seeded source. A seed of 0 picks a time-based seed.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

// Range implements RandomSource
func (s *randSource) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}
