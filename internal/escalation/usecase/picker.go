package usecase

import (
	"math/rand"
	"sync"
	"sync/atomic"
)

// Picker chooses an index in [0, n). Implementations must be safe for
// concurrent use.
type Picker interface {
	Pick(n int) int
}

type randomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPicker returns an unweighted pseudo-random picker. A fixed seed
// makes the selection sequence reproducible.
func NewRandomPicker(seed int64) Picker {
	return &randomPicker{rnd: rand.New(rand.NewSource(seed))}
}

func (p *randomPicker) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

type roundRobinPicker struct {
	next atomic.Uint64
}

// NewRoundRobinPicker cycles through indexes in order.
func NewRoundRobinPicker() Picker {
	return &roundRobinPicker{}
}

func (p *roundRobinPicker) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return int((p.next.Add(1) - 1) % uint64(n))
}
