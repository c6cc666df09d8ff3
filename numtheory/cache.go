// SPDX-License-Identifier: MIT

package numtheory

import (
	"errors"
	"fmt"
	"sync/atomic"

	log "github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrBadCapacity is returned by NewFactorCache for a capacity below 1.
var ErrBadCapacity = errors.New("numtheory: cache capacity must be at least 1")

// FactorCache memoises factorisations, holding at most Capacity entries and
// evicting the least recently used. It is safe for concurrent use. A nil
// *FactorCache is valid and never stores anything.
type FactorCache struct {
	capacity int
	entries  *lru.Cache[uint64, []PrimePower]
	hits     atomic.Int64
	misses   atomic.Int64
}

// NewFactorCache creates an empty cache bounded to capacity entries.
func NewFactorCache(capacity int) (*FactorCache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("NewFactorCache(%d): %w", capacity, ErrBadCapacity)
	}

	entries, err := lru.NewWithEvict(capacity, func(n uint64, _ []PrimePower) {
		if log.V(2) {
			log.Infof("numtheory: factor cache evicted %d (capacity %d)", n, capacity)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("NewFactorCache(%d): %w", capacity, err)
	}

	return &FactorCache{capacity: capacity, entries: entries}, nil
}

// Len returns the number of cached factorisations.
func (c *FactorCache) Len() int {
	if c == nil {
		return 0
	}

	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *FactorCache) Capacity() int {
	if c == nil {
		return 0
	}

	return c.capacity
}

// Stats returns the hit and miss counts so far.
func (c *FactorCache) Stats() (hits, misses int) {
	if c == nil {
		return 0, 0
	}

	return int(c.hits.Load()), int(c.misses.Load())
}

// Contains reports whether n is cached, without touching recency.
func (c *FactorCache) Contains(n uint64) bool {
	if c == nil {
		return false
	}

	return c.entries.Contains(n)
}

func (c *FactorCache) get(n uint64) ([]PrimePower, bool) {
	if c == nil {
		return nil, false
	}
	f, ok := c.entries.Get(n)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)

	return f, true
}

func (c *FactorCache) put(n uint64, factors []PrimePower) {
	if c == nil {
		return
	}
	c.entries.Add(n, factors)
}
