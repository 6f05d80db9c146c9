package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

// ClientIP resolves the caller's address once per request and stores it in
// the request context. Forwarding headers are honoured only when
// trustProxy is set, otherwise any client could claim a whitelisted IP.
func ClientIP(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := services.NormalizeIP(getIPAddress(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(userctx.SetClientIP(r.Context(), ip)))
		})
	}
}

// getIPAddress extracts the IP address from the request, checking
// X-Forwarded-For and X-Real-IP first when behind a trusted proxy
func getIPAddress(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// Take first IP if multiple
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[0])
		}

		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			return strings.TrimSpace(realIP)
		}
	}

	// Fall back to RemoteAddr without its port
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
