package response

import "net/http"

// RequestIDFromRequest extracts the request id assigned by the request-id
// middleware; it is echoed back in error envelopes.
func RequestIDFromRequest(r *http.Request) string {
	if v := r.Header.Get("X-Request-Id"); v != "" {
		return v
	}
	return r.Header.Get("X-Request-ID")
}
