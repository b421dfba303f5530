package site

import (
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ForwardedHostHeader is consulted instead of Host when forwarded hosts are trusted.
const ForwardedHostHeader = "X-Forwarded-Host"

// NormalizeHost trims and lowercases a host so it can be used as a cache key
// and as a case-insensitive match value.
func NormalizeHost(host string) string {
	// cases.Caser is stateful, so a new one is created per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(host))
}

// stripPort removes a trailing port. Reports false if the host had none.
func stripPort(host string) (string, bool) {
	domain, _, err := net.SplitHostPort(host)
	if err != nil || domain == "" {
		return host, false
	}
	return domain, true
}

// requestHost returns the host the client asked for.
func requestHost(r *http.Request, useForwarded bool) string {
	if useForwarded {
		if v := r.Header.Get(ForwardedHostHeader); v != "" {
			// Proxies append; the first value is the client's.
			if i := strings.IndexByte(v, ','); i >= 0 {
				v = v[:i]
			}
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return r.Host
}
