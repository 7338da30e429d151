package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientOrigin extracts the originating network address of a request.
// Behind a proxy the first X-Forwarded-For entry is the client; otherwise
// fall back to the socket's remote address.
func ClientOrigin(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
