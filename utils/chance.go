package utils

import (
	"math/rand"
	"sync"
	"time"
)

// Decider is the seam for probabilistic outcomes (availability checks,
// payment settlement). Production uses RandomDecider; tests inject
// FixedDecider to force either branch.
type Decider interface {
	// Decide reports success with the given probability in [0,1].
	Decide(successRate float64) bool
}

// RandomDecider draws from a seeded PRNG. Safe for concurrent use.
type RandomDecider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomDecider() *RandomDecider {
	return &RandomDecider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *RandomDecider) Decide(successRate float64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64() < successRate
}

// FixedDecider always returns Outcome, regardless of the rate.
type FixedDecider struct {
	Outcome bool
}

func (d FixedDecider) Decide(float64) bool {
	return d.Outcome
}
