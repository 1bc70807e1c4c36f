package feed

import (
	"context"
	"sync"
	"time"

	"marketpanel/internal"
)

// Cache memoizes the wrapped connector's snapshot for a TTL. All
// staleness policy lives here; neither the connectors nor the core
// pipeline know about caching. Invalidate forces the next Fetch to hit
// the source, mirroring the dashboard's manual refresh button.
type Cache struct {
	inner Connector
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	snapshot  internal.RawFeed
	fetchedAt time.Time
	valid     bool
}

func NewCache(inner Connector, ttl time.Duration) *Cache {
	return &Cache{inner: inner, ttl: ttl, now: time.Now}
}

func (c *Cache) Fetch(ctx context.Context) (internal.RawFeed, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.snapshot, nil
	}

	snapshot, err := c.inner.Fetch(ctx)
	if err != nil {
		return internal.RawFeed{}, err
	}

	c.snapshot = snapshot
	c.fetchedAt = c.now()
	c.valid = true
	return snapshot, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
