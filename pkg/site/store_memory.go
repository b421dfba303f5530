package site

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore keeps sites in memory. Handy for tests, development and
// deployments whose sites are declared in a file.
type MemoryStore struct {
	mu       sync.RWMutex
	byID     map[int64]*Site
	byDomain map[string]*Site
}

// NewMemoryStore creates a store seeded with sites.
// Panics if a seed site is invalid, since seeds are fixed at startup.
func NewMemoryStore(sites ...*Site) *MemoryStore {
	s := &MemoryStore{
		byID:     make(map[int64]*Site, len(sites)),
		byDomain: make(map[string]*Site, len(sites)),
	}
	for _, site := range sites {
		if err := s.Add(site); err != nil {
			panic(err)
		}
	}
	return s
}

// Add stores a site. IDs must be positive and domains unique, ignoring case.
func (s *MemoryStore) Add(site *Site) error {
	if site == nil {
		return fmt.Errorf("%w: nil site", ErrInvalidSite)
	}
	if site.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidSite, site.ID)
	}
	domain := NormalizeHost(site.Domain)
	if domain == "" {
		return fmt.Errorf("%w: empty domain for site %d", ErrInvalidSite, site.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byDomain[domain]; ok && existing.ID != site.ID {
		return fmt.Errorf("%w: domain %q already used by site %d", ErrInvalidSite, domain, existing.ID)
	}
	if old, ok := s.byID[site.ID]; ok {
		delete(s.byDomain, NormalizeHost(old.Domain))
	}
	s.byID[site.ID] = site
	s.byDomain[domain] = site
	return nil
}

func (s *MemoryStore) FindByDomain(_ context.Context, domain string) (*Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if site, ok := s.byDomain[NormalizeHost(domain)]; ok {
		return site, nil
	}
	return nil, ErrSiteNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if site, ok := s.byID[id]; ok {
		return site, nil
	}
	return nil, ErrSiteNotFound
}

// All returns every stored site ordered by ID.
func (s *MemoryStore) All() []*Site {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Site, 0, len(s.byID))
	for _, site := range s.byID {
		out = append(out, site)
	}
	slices.SortFunc(out, func(a, b *Site) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return out
}
