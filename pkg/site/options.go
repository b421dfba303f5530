package site

import (
	"errors"
	"log/slog"
	"net/http"
)

// DefaultSiteID is the site identifier used when none is configured.
const DefaultSiteID int64 = 1

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache sets a custom host cache implementation.
// Nil caches are ignored.
func WithCache(cache Cache) Option {
	return func(r *Resolver) {
		if cache != nil {
			r.cache = cache
		}
	}
}

// WithFallback sets the policy applied when no site matches the host.
func WithFallback(f Fallback) Option {
	return func(r *Resolver) {
		r.fallback = f
	}
}

// WithDefaultSiteID sets the site used by FallbackDefault.
func WithDefaultSiteID(id int64) Option {
	return func(r *Resolver) {
		if id > 0 {
			r.defaultSiteID = id
		}
	}
}

// WithForwardedHost makes the resolver read X-Forwarded-Host.
// Enable it only behind a proxy that sets the header.
func WithForwardedHost(enabled bool) Option {
	return func(r *Resolver) {
		r.forwardedHost = enabled
	}
}

// WithLogger sets a custom logger for the resolver and middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	varyOnHost bool
}

// WithVaryOnHost toggles adding "Host" to the Vary header of responses.
// Enabled by default.
func WithVaryOnHost(enabled bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.varyOnHost = enabled
	}
}

// ErrorHandler handles requests rejected by RequireSite.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoSiteInContext), errors.Is(err, ErrSiteNotFound):
		http.Error(w, "Site not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
