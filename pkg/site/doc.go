// Package site resolves inbound HTTP requests to site records by host for
// multi-tenant deployments.
//
// A site is the tenant record that says which logical application instance
// serves a hostname. The package maps the request host to a site, exposes that
// site lazily on the request context and marks responses as varying by host so
// that shared HTTP caches never mix responses computed for different sites.
//
// # Architecture
//
// The package is built around four pieces:
//
// 1. Stores - Load sites from the host application's persistence layer
// (PostgresStore, MongoStore, MemoryStore and LoadFile for YAML seeds)
// 2. Cache - Maps lowercased hosts to resolved sites, negative results included
// (MemoryCache, RedisCache, NoOpCache)
// 3. Resolver - Runs the lookup chain: cache, full host, host without port,
// fallback policy
// 4. Middleware - Installs the lazy per-request value and patches Vary
//
// # Usage
//
//	import "github.com/dmitrymomot/sitekit/pkg/site"
//
//	store := site.NewPostgresStore(pool, "sites")
//	resolver := site.NewResolver(store,
//		site.WithFallback(site.FallbackDefault),
//		site.WithDefaultSiteID(1),
//	)
//
//	router.Use(site.Middleware(resolver))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		s, ok := site.FromContext(r.Context())
//		if !ok {
//			// No site matches the host and no fallback applies
//			return
//		}
//		fmt.Fprintf(w, "Welcome to %s", s.Name)
//	}
//
// # Fallback Policies
//
// When neither the full host nor the host without its port matches a site:
//
//   - FallbackNone: the request has no site
//   - FallbackDefault: the site with the default site ID is used
//   - FallbackRequest: a synthetic site is built from the host (NewRequestSite)
//
// A Resolver created with a nil store treats every host as a request site.
//
// # Caching
//
// Resolutions are cached by lowercased host and never evicted; call
// Cache().Clear after editing sites. Store failures are not cached.
// MemoryCache is per process, RedisCache shares entries between processes.
//
// # Lazy Resolution
//
// The middleware does not touch the store. The first FromContext or Lookup
// call for a request runs the resolver; later calls reuse the outcome.
// LoggerExtractor only reports sites that are already resolved.
//
// # Configuration
//
// Config carries SITE_ID, SITES_FALLBACK, SITES_VARY_ON_HOST and
// SITES_USE_FORWARDED_HOST; use NewResolverFromConfig and
// Config.MiddlewareOptions to apply them.
package site
