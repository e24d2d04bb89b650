package brain

import (
	"math/rand/v2"
	"time"
)

// Random is the randomness source of the brain
// *rand.Rand from math/rand/v2 satisfies it; tests pass a seeded one
type Random interface {
	Float64() float64
	Int64N(n int64) int64
	IntN(n int) int
}

// Clock provides the current time, see engine.TimeProvider and engine.MockTimeProvider
type Clock interface {
	Now() time.Time
}

// NewRandom returns a PCG-backed source, seed 0 picks one from the clock
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WeightedIndex picks an index from a probability vector given a uniform [0,1) sample
// The first index whose cumulative weight exceeds the sample wins, zero weights never do.
// A sample past the accumulated sum (float rounding) resolves to the last positive weight.
func WeightedIndex(weights []float64, sample float64) int {
	var cumulative float64
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		cumulative += w
		if cumulative > sample {
			return i
		}
	}
	return last
}

// drawDuration returns a duration uniformly drawn in [lo, hi]
func drawDuration(rng Random, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int64N(int64(hi-lo)+1))
}

func drawDirection(rng Random) Direction {
	return Direction(rng.IntN(2))
}
