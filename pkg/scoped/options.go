package scoped

import "github.com/dmitrymomot/sitekit/pkg/site"

type options struct {
	field         string
	defaultSiteID int64
}

// Option configures a Manager.
type Option func(*options)

// WithField sets the dotted relation path leading to the site,
// e.g. "site" or "release.package.site". Without it the manager looks for a
// relation named "site" or "sites".
func WithField(path string) Option {
	return func(o *options) {
		if path != "" {
			o.field = path
		}
	}
}

// WithDefaultSiteID sets the site used by ByID(0).
func WithDefaultSiteID(id int64) Option {
	return func(o *options) {
		if id > 0 {
			o.defaultSiteID = id
		}
	}
}

func defaultOptions() options {
	return options{defaultSiteID: site.DefaultSiteID}
}
