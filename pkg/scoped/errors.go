package scoped

import "errors"

var (
	// ErrSiteFieldNotFound is returned when a model has no site relation to scope by.
	ErrSiteFieldNotFound = errors.New("site relation not found")

	// ErrInvalidFieldPath is returned when an explicit relation path does not resolve.
	ErrInvalidFieldPath = errors.New("invalid site relation path")

	// ErrQueryFailed wraps database errors returned while running a scoped query.
	ErrQueryFailed = errors.New("scoped query failed")
)
