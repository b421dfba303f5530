package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Host records a request host under the key "host".
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// SiteID records a site identifier under the key "site_id".
func SiteID(id int64) slog.Attr {
	return slog.Int64("site_id", id)
}
