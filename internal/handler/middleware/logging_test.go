//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"meeting-rooms/internal/handler/httperr"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "15:04:05"}, "Booking Service", &buf)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/bookings/user/:id", func(c *gin.Context) {
		c.Set(ctxUserIDKey, int64(7))
		c.Set(ctxUsernameKey, "alice")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings/user/7", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))

	out := buf.String()
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "service=\"Booking Service\"")
	assert.Contains(t, out, "request_id=req-123")
	assert.Contains(t, out, "user_id=7")
	assert.Contains(t, out, "username=alice")
	assert.Contains(t, out, "status_code=404")
	// debug records are filtered at info level
	assert.NotContains(t, out, "Request started")
}

func TestLoggingMiddleware_ServerErrorCarriesStack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "15:04:05"}, "Room Service", &buf)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/rooms", func(c *gin.Context) {
		httperr.Internal(c, errs.New("pool exhausted"))
	})
	r.GET("/rooms/9", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("room 9 missing"), "Room not found")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms", nil))
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "stack=")
	assert.Contains(t, out, "pool exhausted")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/9", nil))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.NotContains(t, buf.String(), "stack=")
}

func TestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "debug", TimeZone: "UTC", TimeFormat: "15:04:05"}, "", &buf)

	var seen string
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/health", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	assert.Contains(t, buf.String(), "Request started")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
