package site_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sitekit/pkg/site"
)

// countingStore wraps a MemoryStore and records every lookup.
type countingStore struct {
	*site.MemoryStore

	mu        sync.RWMutex
	domains   []string
	byIDCalls int
	err       error
	block     chan struct{}
}

func newCountingStore(sites ...*site.Site) *countingStore {
	return &countingStore{MemoryStore: site.NewMemoryStore(sites...)}
}

func (s *countingStore) FindByDomain(ctx context.Context, domain string) (*site.Site, error) {
	s.mu.Lock()
	s.domains = append(s.domains, domain)
	err, block := s.err, s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return s.MemoryStore.FindByDomain(ctx, domain)
}

func (s *countingStore) FindByID(ctx context.Context, id int64) (*site.Site, error) {
	s.mu.Lock()
	s.byIDCalls++
	err := s.err
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return s.MemoryStore.FindByID(ctx, id)
}

func (s *countingStore) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *countingStore) lookups() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.domains...)
}

func (s *countingStore) calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.domains) + s.byIDCalls
}

var (
	exampleCom = &site.Site{ID: 1, Domain: "example.com", Name: "Example"}
	exampleOrg = &site.Site{ID: 2, Domain: "example.org", Name: "Example Org"}
)

func TestNewRequestSite(t *testing.T) {
	t.Parallel()

	s := site.NewRequestSite("  Example.COM:8080 ")
	assert.Equal(t, int64(0), s.ID)
	assert.Equal(t, "example.com:8080", s.Domain)
	assert.Equal(t, "example.com:8080", s.Name)
	assert.True(t, s.FromRequest)
}

func TestSiteString(t *testing.T) {
	t.Parallel()

	var nilSite *site.Site
	assert.Equal(t, "", nilSite.String())
	assert.Equal(t, "example.com", exampleCom.String())
}

func TestNormalizeHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.com", "example.com"},
		{" Example.Com:8000 ", "example.com:8000"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, site.NormalizeHost(tt.in))
		})
	}
}
