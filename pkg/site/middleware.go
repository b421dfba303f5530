package site

import (
	"net/http"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Middleware creates HTTP middleware that attaches the request's site to its
// context and marks responses as varying by host.
//
// The site is resolved lazily: the resolver runs on the first FromContext or
// Lookup call for the request, at most once, and never if the handler does not
// ask for it.
func Middleware(resolver *Resolver, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		varyOnHost: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := withLazySite(r.Context(), func() (*Site, error) {
				site, err := resolver.Resolve(r)
				if err != nil {
					resolver.logger.ErrorContext(r.Context(), "failed to resolve site",
						logger.Host(resolver.Host(r)),
						logger.Error(err),
					)
				}
				return site, err
			})
			r = r.WithContext(ctx)

			if !cfg.varyOnHost {
				next.ServeHTTP(w, r)
				return
			}

			vw := &varyWriter{ResponseWriter: w, fields: []string{"Host"}}
			next.ServeHTTP(vw, r)
			// Handlers that write nothing still get the header.
			vw.patch()
		})
	}
}

// RequireSite creates middleware that rejects requests without a resolved site.
// This is useful for protecting routes that only make sense for a known site.
func RequireSite(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := Lookup(r.Context()); err != nil {
				errorHandler(w, r, err)
				return
			}
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoSiteInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
