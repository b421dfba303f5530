package site

import (
	"net/http"
	"strings"
)

// PatchVary adds fields to the Vary header of h.
//
// Existing values are kept in order and compared case-insensitively, so a
// field is never listed twice. A wildcard collapses the header to "*".
func PatchVary(h http.Header, fields ...string) {
	values := make([]string, 0, len(fields)+2)
	for _, line := range h.Values("Vary") {
		for _, v := range strings.Split(line, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	values = append(values, fields...)

	seen := make(map[string]struct{}, len(values))
	merged := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if key == "*" {
			h.Set("Vary", "*")
			return
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, strings.TrimSpace(v))
	}

	if len(merged) == 0 {
		return
	}
	h.Set("Vary", strings.Join(merged, ", "))
}

// varyWriter patches the Vary header right before the response headers are sent.
type varyWriter struct {
	http.ResponseWriter
	fields  []string
	patched bool
}

func (w *varyWriter) patch() {
	if w.patched {
		return
	}
	w.patched = true
	PatchVary(w.Header(), w.fields...)
}

func (w *varyWriter) WriteHeader(code int) {
	w.patch()
	w.ResponseWriter.WriteHeader(code)
}

func (w *varyWriter) Write(b []byte) (int, error) {
	w.patch()
	return w.ResponseWriter.Write(b)
}

// Flush keeps streaming handlers working behind the middleware.
func (w *varyWriter) Flush() {
	w.patch()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (w *varyWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
