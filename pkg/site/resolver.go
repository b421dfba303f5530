package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Resolver maps request hosts to sites.
//
// Lookups go through the cache first. On a miss the store is queried for the
// full host, then for the host without its port, and finally the fallback
// policy is applied. The outcome is cached, negative results included.
// Store failures are returned and never cached.
type Resolver struct {
	store         Store
	cache         Cache
	fallback      Fallback
	defaultSiteID int64
	forwardedHost bool
	logger        *slog.Logger
	group         singleflight.Group
}

// NewResolver creates a resolver backed by store.
//
// A nil store means there is no site table: every host resolves to a
// request site built from the host itself.
func NewResolver(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:         store,
		cache:         NewMemoryCache(),
		fallback:      FallbackNone,
		defaultSiteID: DefaultSiteID,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the site serving the request host.
// Returns nil, nil when no site matches and the fallback policy is FallbackNone.
func (r *Resolver) Resolve(req *http.Request) (*Site, error) {
	return r.ResolveHost(req.Context(), r.Host(req))
}

// ResolveHost returns the site serving host.
func (r *Resolver) ResolveHost(ctx context.Context, host string) (*Site, error) {
	host = NormalizeHost(host)

	if site, ok := r.cache.Get(ctx, host); ok {
		return site, nil
	}

	// Concurrent misses for one host share a single store round trip. The
	// shared lookup outlives any one caller; each caller waits on its own ctx.
	ch := r.group.DoChan(host, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		site, err := r.lookup(ctx, host)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(ctx, host, site); err != nil {
			r.logger.WarnContext(ctx, "failed to cache site",
				logger.Host(host),
				logger.Error(err),
			)
		}
		return site, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		site, _ := res.Val.(*Site)
		return site, nil
	}
}

// Host returns the host a request is resolved by: r.Host, or the first
// X-Forwarded-Host value when forwarded hosts are trusted.
func (r *Resolver) Host(req *http.Request) string {
	return requestHost(req, r.forwardedHost)
}

// Cache returns the host cache used by the resolver.
func (r *Resolver) Cache() Cache {
	return r.cache
}

// DefaultSiteID returns the configured default site identifier.
func (r *Resolver) DefaultSiteID() int64 {
	return r.defaultSiteID
}

// Fallback returns the configured fallback policy.
func (r *Resolver) Fallback() Fallback {
	return r.fallback
}

func (r *Resolver) lookup(ctx context.Context, host string) (*Site, error) {
	if r.store == nil {
		return NewRequestSite(host), nil
	}

	site, err := r.findByDomain(ctx, host)
	if err != nil || site != nil {
		return site, err
	}

	if domain, ok := stripPort(host); ok {
		site, err = r.findByDomain(ctx, domain)
		if err != nil || site != nil {
			return site, err
		}
	}

	return r.applyFallback(ctx, host)
}

func (r *Resolver) findByDomain(ctx context.Context, domain string) (*Site, error) {
	site, err := r.store.FindByDomain(ctx, domain)
	if errors.Is(err, ErrSiteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by domain %q: %w", domain, err)
	}
	return site, nil
}

func (r *Resolver) applyFallback(ctx context.Context, host string) (*Site, error) {
	switch r.fallback {
	case FallbackDefault:
		site, err := r.store.FindByID(ctx, r.defaultSiteID)
		if err != nil {
			return nil, fmt.Errorf("load default site %d: %w", r.defaultSiteID, err)
		}
		r.logger.DebugContext(ctx, "no site matches host, using default site",
			logger.Host(host),
			logger.SiteID(site.ID),
		)
		return site, nil
	case FallbackRequest:
		r.logger.DebugContext(ctx, "no site matches host, using request site", logger.Host(host))
		return NewRequestSite(host), nil
	default:
		return nil, nil
	}
}
