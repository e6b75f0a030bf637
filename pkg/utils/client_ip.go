package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the best-effort originating address: first hop of
// X-Forwarded-For when present, otherwise the direct connection address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
