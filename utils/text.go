package utils

import (
	"net"
	"net/http"
	"strings"
)

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ClientIP returns the caller's address. Forwarding headers are only read
// when trustProxy is set, i.e. when a single reverse proxy in front of the
// service appends the peer it saw to X-Forwarded-For. In that case the
// right-most hop is used, then X-Real-Ip. Otherwise, or when neither header
// is present, the connection's remote host is returned.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
				return last
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-Ip")); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
