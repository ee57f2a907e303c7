package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-stylist/internal/infra/config"
)

const (
	visitorTTL      = 5 * time.Minute
	cleanupInterval = time.Minute
)

// rateLimitMiddleware applies a per-client-IP token bucket.
func rateLimitMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newIPRateLimiter(cfg, time.Now)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, wait := limiter.allow(ip)
		if allowed {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		abortWithError(c, NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests", nil))
	}
}

type ipRateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	perSecond   float64
	burst       float64
	now         func() time.Time
	lastCleanup time.Time
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

func newIPRateLimiter(cfg config.RateLimitConfig, now func() time.Time) *ipRateLimiter {
	burst := float64(cfg.Burst)
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		buckets:     make(map[string]*bucket),
		perSecond:   float64(cfg.RequestsPerMinute) / 60,
		burst:       burst,
		now:         now,
		lastCleanup: now(),
	}
}

// allow takes a token for ip. When none is left it reports how long until one refills.
func (l *ipRateLimiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{tokens: l.burst, lastSeen: now}
		l.buckets[ip] = b
	} else if elapsed := now.Sub(b.lastSeen).Seconds(); elapsed > 0 {
		b.tokens = math.Min(l.burst, b.tokens+elapsed*l.perSecond)
		b.lastSeen = now
	}
	if now.Sub(l.lastCleanup) >= cleanupInterval {
		l.evictLocked(now)
	}
	if b.tokens < 1 {
		missing := 1 - b.tokens
		return false, time.Duration(missing / l.perSecond * float64(time.Second))
	}
	b.tokens--
	return true, 0
}

func (l *ipRateLimiter) evictLocked(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) > visitorTTL {
			delete(l.buckets, ip)
		}
	}
	l.lastCleanup = now
}
