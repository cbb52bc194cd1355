package bootstrap

import (
	"net/http"

	"meeting-rooms/internal/infra/client"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/usecase"

	"go.uber.org/fx"
)

var DownstreamModule = fx.Module("downstream",
	fx.Provide(
		NewHTTPClient,
		func(cfg config.Config, hc *http.Client) usecase.RoomCatalog {
			return client.NewRoomClient(cfg.Downstream.RoomServiceURL, hc)
		},
		func(cfg config.Config, hc *http.Client) usecase.WeatherProvider {
			return client.NewWeatherClient(cfg.Downstream.WeatherServiceURL, hc)
		},
	),
)

func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Downstream.Timeout}
}
