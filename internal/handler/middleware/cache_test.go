//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestResponseCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	store := cache.New(time.Minute, time.Minute)
	r := gin.New()
	r.Use(middleware.ResponseCache(store, time.Minute))
	r.GET("/rooms", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	r.GET("/rooms/:id", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	})
	r.POST("/rooms", func(c *gin.Context) {
		calls++
		c.Status(http.StatusNoContent)
	})

	t.Run("second GET is served from cache", func(t *testing.T) {
		first := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

		second := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		assert.Equal(t, http.StatusOK, second.Code)
		httptest.AssertHeaders(t, second, map[string]string{
			"X-Cache":      "HIT",
			"Content-Type": "application/json; charset=utf-8",
		})
		assert.JSONEq(t, first.Body.String(), second.Body.String())
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		calls = 0
		httptest.PerformRequest(t, r, http.MethodGet, "/rooms/99", nil, "")
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/99", nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		assert.Equal(t, 2, calls)
	})

	t.Run("non-GET bypasses the cache", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/rooms", nil, "")
		httptest.AssertHeaders(t, rec, map[string]string{"X-Cache": ""})
	})
}
