package assistant

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Picker chooses one of n templates for a query
type Picker interface {
	Pick(key string, n int) int
}

// HashPicker picks from a BLAKE2b digest of the key, so the same query
// always gets the same template.
type HashPicker struct{}

// Pick returns an index in [0, n)
func (HashPicker) Pick(key string, n int) int {
	if n <= 1 {
		return 0
	}
	sum := blake2b.Sum256([]byte(key))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// RandPicker picks uniformly from a seeded source
type RandPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandPicker creates a picker seeded with seed
func NewRandPicker(seed int64) *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns an index in [0, n)
func (p *RandPicker) Pick(_ string, n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// NewPicker builds the picker for a fallback strategy name
func NewPicker(strategy string, seed int64) (Picker, error) {
	switch strategy {
	case "", StrategyHash:
		return HashPicker{}, nil
	case StrategyRandom:
		return NewRandPicker(seed), nil
	default:
		return nil, fmt.Errorf("unknown fallback strategy %q", strategy)
	}
}
