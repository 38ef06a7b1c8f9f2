package roster

import (
	"context"
	"sync"
	"time"

	"figurine-manager/feature/roster/models"

	"golang.org/x/sync/singleflight"
)

// cachedDocument is a parsed roster with its build time.
type cachedDocument struct {
	doc   *models.Document
	built time.Time
}

// cache holds parsed rosters keyed by roster key.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cachedDocument
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cachedDocument),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *cache) expired(e cachedDocument) bool {
	if c.ttl <= 0 {
		return true // No caching
	}
	return c.now().Sub(e.built) > c.ttl
}

func (c *cache) lookup(key string) (*models.Document, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.expired(e) {
		return nil, false
	}
	return e.doc, true
}

// getOrLoad returns a fresh cached document or loads it once for all
// concurrent callers. hit reports whether the cache answered.
func (c *cache) getOrLoad(ctx context.Context, key string, load func(context.Context) (*models.Document, error)) (doc *models.Document, hit bool, err error) {
	if doc, ok := c.lookup(key); ok {
		return doc, true, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after winning the flight
		if doc, ok := c.lookup(key); ok {
			return doc, nil
		}

		doc, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cachedDocument{doc: doc, built: c.now()}
			c.mu.Unlock()
		}
		return doc, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.(*models.Document), false, nil
}

func (c *cache) invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *cache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]cachedDocument)
	c.mu.Unlock()
}
