package site

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// lazySite resolves the site on first access and memoizes the outcome
// for the lifetime of one request.
type lazySite struct {
	once    sync.Once
	resolve func() (*Site, error)
	done    atomic.Bool
	site    *Site
	err     error
}

func (l *lazySite) get() (*Site, error) {
	l.once.Do(func() {
		l.site, l.err = l.resolve()
		l.resolve = nil
		l.done.Store(true)
	})
	return l.site, l.err
}

// peek returns the site only if it has already been resolved.
func (l *lazySite) peek() (*Site, bool) {
	if !l.done.Load() {
		return nil, false
	}
	return l.site, l.site != nil
}

func withLazySite(ctx context.Context, resolve func() (*Site, error)) context.Context {
	return context.WithValue(ctx, contextKey{}, &lazySite{resolve: resolve})
}

// WithSite adds an already resolved site to the context.
func WithSite(ctx context.Context, site *Site) context.Context {
	return withLazySite(ctx, func() (*Site, error) { return site, nil })
}

// Lookup returns the site of the request that ctx belongs to, resolving it
// on first call. Returns nil, nil if no site matches or the context carries
// no site at all.
func Lookup(ctx context.Context) (*Site, error) {
	l, ok := ctx.Value(contextKey{}).(*lazySite)
	if !ok || l == nil {
		return nil, nil
	}
	return l.get()
}

// FromContext retrieves the site from the context.
// Returns nil, false if no site is resolved; resolution errors are reported
// the same way and logged by the middleware.
func FromContext(ctx context.Context) (*Site, bool) {
	site, err := Lookup(ctx)
	if err != nil || site == nil {
		return nil, false
	}
	return site, true
}

// IDFromContext retrieves just the site ID from the context.
// Request sites have no ID and report false.
func IDFromContext(ctx context.Context) (int64, bool) {
	site, ok := FromContext(ctx)
	if !ok || site.FromRequest {
		return 0, false
	}
	return site.ID, true
}

// MustFromContext retrieves the site from the context.
// Panics if no site is found. Use this only in handlers
// that absolutely require a site to function.
func MustFromContext(ctx context.Context) *Site {
	site, ok := FromContext(ctx)
	if !ok {
		panic("site: no site in context")
	}
	return site
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the site
// to log records. Only already resolved sites are reported, so logging never
// triggers a lookup.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		l, ok := ctx.Value(contextKey{}).(*lazySite)
		if !ok || l == nil {
			return slog.Attr{}, false
		}
		site, ok := l.peek()
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("site",
			slog.Int64("id", site.ID),
			slog.String("domain", site.Domain),
		), true
	}
}
