package api

import (
	"net/http"

	resdto "meeting-rooms/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

const healthyStatus = "healthy"

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// @Summary Health check
// @Description Liveness probe, always 200 while the process is up
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:  healthyStatus,
		Service: h.service,
	})
}
