package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are evicted.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	r        rate.Limit
	b        int
}

func NewIPRateLimiter(r rate.Limit, b int, idleTTL time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(idleTTL, idleTTL),
		r:        r,
		b:        b,
	}
}

func (i *IPRateLimiter) Limiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := i.limiters.Get(ip); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(i.r, i.b)
	}
	// re-set on every hit so the TTL counts from the last request
	i.limiters.SetDefault(ip, limiter)
	return limiter
}

// Len reports how many buckets are held, including expired ones not yet swept.
func (i *IPRateLimiter) Len() int {
	return i.limiters.ItemCount()
}

// RateLimiter answers 429 once a client IP exhausts its bucket.
func RateLimiter(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
