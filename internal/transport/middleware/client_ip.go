package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ClientIP resolves the caller's IP and stores it in the context. Proxy
// headers are consulted first because the service runs behind a reverse
// proxy in every deployed environment; RemoteAddr is the fallback.
// The IP keys anonymous AI quotas and per-IP rate limits.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxutil.WithClientIP(r.Context(), resolveIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the original client.
		if idx := strings.Index(fwd, ","); idx != -1 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-Ip"); real != "" {
		return strings.TrimSpace(real)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
