package api

import (
	"net"
	"net/http"
	"strings"
)

// clientIP returns the caller's address. Forwarding headers are only
// consulted when trustProxy is set, since any client can forge them.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			for ip := range strings.SplitSeq(fwd, ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
		}
		if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
