package api

import (
	"net/http"

	reqdto "meeting-rooms/internal/handler/dto/request"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	weatherUseCase usecase.WeatherUseCase
}

func NewWeatherHandler(weatherUseCase usecase.WeatherUseCase) *WeatherHandler {
	return &WeatherHandler{weatherUseCase: weatherUseCase}
}

// @Summary Forecast for a location and date
// @Description Returns the stored forecast, or generates and stores one. Never fails.
// @Tags weather
// @Produce json
// @Param location query string false "City name"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} resdto.WeatherResponse
// @Router /weather [get]
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	var q reqdto.WeatherQuery
	// form binding only fails on type mismatches and both fields are strings
	_ = c.ShouldBindQuery(&q)

	forecast := h.weatherUseCase.GetForecast(c.Request.Context(), q.Location, q.Date)
	c.JSON(http.StatusOK, resdto.FromForecast(forecast))
}
