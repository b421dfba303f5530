package site

import (
	"context"
	"sync"
)

// Cache maps normalized hosts to resolved sites.
//
// A nil site with ok == true is a cached negative result: the host is known
// to resolve to no site.
type Cache interface {
	// Get retrieves the cached resolution for host.
	Get(ctx context.Context, host string) (site *Site, ok bool)

	// Set stores the resolution for host. A nil site records a negative result.
	Set(ctx context.Context, host string, site *Site) error

	// Clear drops every cached resolution.
	Clear(ctx context.Context) error
}

// MemoryCache is a process-wide host cache. Entries are never evicted;
// they live until Clear is called or the process exits.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]*Site
}

// NewMemoryCache creates an empty in-memory host cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]*Site)}
}

func (c *MemoryCache) Get(_ context.Context, host string) (*Site, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	site, ok := c.items[host]
	return site, ok
}

func (c *MemoryCache) Set(_ context.Context, host string, site *Site) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[host] = site
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	return nil
}

// Len returns the number of cached hosts, negative results included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// NoOpCache disables caching, useful for testing or when caching is unwanted.
type NoOpCache struct{}

func (NoOpCache) Get(context.Context, string) (*Site, bool) { return nil, false }
func (NoOpCache) Set(context.Context, string, *Site) error  { return nil }
func (NoOpCache) Clear(context.Context) error               { return nil }
