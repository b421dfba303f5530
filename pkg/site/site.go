package site

import "context"

// Site identifies which logical application instance serves a given hostname.
type Site struct {
	ID     int64  `json:"id" yaml:"id"`
	Domain string `json:"domain" yaml:"domain"`
	Name   string `json:"name" yaml:"name"`

	// FromRequest marks a synthetic site built from the request host.
	// Such sites are not persisted and carry a zero ID.
	FromRequest bool `json:"from_request,omitempty" yaml:"-"`
}

// NewRequestSite builds a case-insensitive site from a request host.
// Domain and name are both the lowercased host, port included.
func NewRequestSite(host string) *Site {
	host = NormalizeHost(host)
	return &Site{
		Domain:      host,
		Name:        host,
		FromRequest: true,
	}
}

func (s *Site) String() string {
	if s == nil {
		return ""
	}
	return s.Domain
}

// Store loads sites from the host application's persistence layer.
type Store interface {
	// FindByDomain returns the first site whose domain matches case-insensitively.
	// Returns ErrSiteNotFound if there is no match.
	FindByDomain(ctx context.Context, domain string) (*Site, error)

	// FindByID returns the site with the given identifier.
	// Returns ErrSiteNotFound if there is no such site.
	FindByID(ctx context.Context, id int64) (*Site, error)
}
