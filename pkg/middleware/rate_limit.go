package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"travelplanner/pkg/memcache"
	"travelplanner/pkg/utils"
)

const limiterIdleTTL = 10 * time.Minute

// ClientRateLimiter hands out one token bucket per client IP. Idle buckets
// expire from the store.
type ClientRateLimiter struct {
	mu       sync.Mutex
	limiters *memcache.TTLStore[*rate.Limiter]
	limit    rate.Limit
	burst    int
}

func NewClientRateLimiter(perMinute, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: memcache.NewTTLStore[*rate.Limiter](limiterIdleTTL),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}
}

func (l *ClientRateLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(client)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Set(client, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// StartJanitor evicts idle client buckets in the background until Stop.
func (l *ClientRateLimiter) StartJanitor() {
	l.limiters.StartJanitor(limiterIdleTTL)
}

func (l *ClientRateLimiter) Stop() {
	l.limiters.StopJanitor()
}

// RateLimitMiddleware rejects requests over the per-client budget with 429.
// A nil limiter disables limiting.
func RateLimitMiddleware(l *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l != nil && !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
