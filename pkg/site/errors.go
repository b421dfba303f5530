package site

import "errors"

var (
	// ErrSiteNotFound is returned by a Store when no site matches.
	ErrSiteNotFound = errors.New("site not found")

	// ErrNoSiteInContext is returned when the request has no resolved site.
	ErrNoSiteInContext = errors.New("no site in context")

	// ErrInvalidFallback is returned when a fallback policy name is unknown.
	ErrInvalidFallback = errors.New("invalid site fallback policy")

	// ErrInvalidSite is returned when a site record cannot be stored.
	ErrInvalidSite = errors.New("invalid site")
)
