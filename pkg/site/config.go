package site

// Config holds the site resolution settings.
type Config struct {
	DefaultSiteID    int64    `env:"SITE_ID" envDefault:"1"`                      // DefaultSiteID is used by FallbackDefault and by scoped queries without an explicit site.
	Fallback         Fallback `env:"SITES_FALLBACK" envDefault:"none"`            // Fallback is applied when no site matches the request host.
	VaryOnHost       bool     `env:"SITES_VARY_ON_HOST" envDefault:"true"`        // VaryOnHost adds "Host" to the Vary header of every response.
	UseForwardedHost bool     `env:"SITES_USE_FORWARDED_HOST" envDefault:"false"` // UseForwardedHost reads the host from X-Forwarded-Host when present.
}

// NewResolverFromConfig creates a Resolver from the provided Config.
// Additional options are applied after the config values.
func NewResolverFromConfig(store Store, cfg Config, opts ...Option) *Resolver {
	configOpts := make([]Option, 0, 3+len(opts))
	if cfg.DefaultSiteID > 0 {
		configOpts = append(configOpts, WithDefaultSiteID(cfg.DefaultSiteID))
	}
	if cfg.Fallback != "" {
		configOpts = append(configOpts, WithFallback(cfg.Fallback))
	}
	configOpts = append(configOpts, WithForwardedHost(cfg.UseForwardedHost))
	configOpts = append(configOpts, opts...)

	return NewResolver(store, configOpts...)
}

// MiddlewareOptions converts the response related settings into middleware options.
func (c Config) MiddlewareOptions() []MiddlewareOption {
	return []MiddlewareOption{WithVaryOnHost(c.VaryOnHost)}
}
