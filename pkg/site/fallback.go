package site

import (
	"fmt"
	"strings"
)

// Fallback decides what a request resolves to when no site matches its host.
type Fallback string

const (
	// FallbackNone leaves the site unresolved.
	FallbackNone Fallback = "none"
	// FallbackDefault uses the site with the default site ID.
	FallbackDefault Fallback = "default"
	// FallbackRequest builds a synthetic site from the request host.
	FallbackRequest Fallback = "request"
)

// ParseFallback parses a fallback policy name. An empty name means FallbackNone.
func ParseFallback(s string) (Fallback, error) {
	switch Fallback(strings.ToLower(strings.TrimSpace(s))) {
	case "", FallbackNone:
		return FallbackNone, nil
	case FallbackDefault:
		return FallbackDefault, nil
	case FallbackRequest:
		return FallbackRequest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFallback, s)
	}
}

// UnmarshalText lets env and yaml decoders validate the policy name.
func (f *Fallback) UnmarshalText(text []byte) error {
	v, err := ParseFallback(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Fallback) String() string {
	if f == "" {
		return string(FallbackNone)
	}
	return string(f)
}
