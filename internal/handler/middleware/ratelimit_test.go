//go:build unit

package middleware_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// no refill during the test
	limiter := middleware.NewIPRateLimiter(rate.Limit(0), 2, time.Minute)
	r := gin.New()
	r.Use(middleware.RateLimiter(limiter))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 2 {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")

	// buckets are per client IP
	rec = httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/login", nil, "",
		map[string]string{"X-Forwarded-For": "203.0.113.9"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_ReusesBucket(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(1), 1, time.Minute)
	assert.Same(t, limiter.Limiter("10.0.0.1"), limiter.Limiter("10.0.0.1"))
	assert.NotSame(t, limiter.Limiter("10.0.0.1"), limiter.Limiter("10.0.0.2"))
	assert.Equal(t, 2, limiter.Len())
}

func TestIPRateLimiter_EvictsIdleBuckets(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(1), 1, 50*time.Millisecond)

	first := limiter.Limiter("10.0.0.1")
	for i := range 100 {
		limiter.Limiter(fmt.Sprintf("198.51.100.%d", i))
	}
	assert.Equal(t, 101, limiter.Len())

	assert.Eventually(t, func() bool { return limiter.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.NotSame(t, first, limiter.Limiter("10.0.0.1"))
}
