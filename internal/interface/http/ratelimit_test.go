package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-stylist/internal/infra/config"
)

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	ok, _ := limiter.allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)
	ok, wait := limiter.allow("10.0.0.1")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	ok, _ = limiter.allow("10.0.0.2")
	require.True(t, ok, "buckets are per ip")

	now = now.Add(time.Second)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)
}

func TestIPRateLimiterEvictsIdleVisitors(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter := newIPRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1}, func() time.Time { return now })

	limiter.allow("10.0.0.1")
	now = now.Add(visitorTTL + time.Minute)
	limiter.allow("10.0.0.2")

	require.Len(t, limiter.buckets, 1)
	_, ok := limiter.buckets["10.0.0.2"]
	require.True(t, ok)
}
