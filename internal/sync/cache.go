package sync

import (
	stdsync "sync"

	"github.com/smart-timetable/dashboard-api/internal/store"
)

// lastKnown holds the most recent successfully fetched copy of one remote
// collection. Snapshots are copies; cached items are never mutated after
// they are stored.
type lastKnown[T store.Record[T]] struct {
	mu    stdsync.RWMutex
	items []T
}

func (c *lastKnown[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *lastKnown[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

func (c *lastKnown[T]) upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

func (c *lastKnown[T]) removeID(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// lastKnownValue is the single-document counterpart of lastKnown, used for
// the published timetable and the statistics summary.
type lastKnownValue[T any] struct {
	mu   stdsync.RWMutex
	item *T
}

func (c *lastKnownValue[T]) get() (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.item == nil {
		return nil, false
	}
	out := *c.item
	return &out, true
}

func (c *lastKnownValue[T]) set(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = &item
}
