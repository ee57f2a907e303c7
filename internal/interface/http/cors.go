package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsMiddleware answers preflight requests and echoes allowed origins.
// An empty list or a "*" entry allows any origin.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	policy := newOriginPolicy(allowed)
	return func(c *gin.Context) {
		headers := c.Writer.Header()
		if origin := policy.resolve(c.GetHeader("Origin")); origin != "" {
			headers.Set("Access-Control-Allow-Origin", origin)
		}
		headers.Add("Vary", "Origin")
		headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		headers.Set("Access-Control-Expose-Headers", invocationHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type originPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newOriginPolicy(allowed []string) originPolicy {
	p := originPolicy{origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			p.any = true
			continue
		}
		if origin != "" {
			p.origins[strings.ToLower(origin)] = struct{}{}
		}
	}
	if len(p.origins) == 0 {
		p.any = true
	}
	return p
}

// resolve returns the Access-Control-Allow-Origin value for a request origin,
// or "" when the origin is not allowed.
func (p originPolicy) resolve(origin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.origins[strings.ToLower(origin)]; ok {
		return origin
	}
	return ""
}
