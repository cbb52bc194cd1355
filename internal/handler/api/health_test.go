//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meeting-rooms/internal/handler/api"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", api.NewHealthHandler("Booking Service").Check)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

	var got resdto.HealthResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
	assert.Equal(t, resdto.HealthResponse{Status: "healthy", Service: "Booking Service"}, got)
}
