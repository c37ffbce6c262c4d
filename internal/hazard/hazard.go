// Package hazard generates random booleans for the hazard command.
package hazard

import (
	"math/rand"
	"sync"
)

// Generator produces random booleans. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns true or false with equal probability
func (g *Generator) Generate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(2) == 1
}
