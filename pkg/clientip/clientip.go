package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client IP for the request. Proxy headers take
// precedence over RemoteAddr: X-Forwarded-For (first valid entry), then
// X-Real-IP. Invalid header values are skipped rather than trusted.
func GetIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			ip := strings.TrimSpace(part)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
		if net.ParseIP(rip) != nil {
			return rip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. in tests.
		if net.ParseIP(r.RemoteAddr) != nil {
			return r.RemoteAddr
		}
		return ""
	}
	return host
}
