package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for rate limiting. The service sits
// behind a reverse proxy, so the forwarding headers win over the socket
// address when present.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First entry is the originating client; the rest are proxies.
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
