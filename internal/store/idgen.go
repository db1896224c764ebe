package store

import (
	"sync"
	"time"
)

// IDGenerator assigns ids to locally created records. Ids are wall-clock
// milliseconds, bumped past the previous id when the clock stalls or runs
// backwards so they stay strictly increasing within a process.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
