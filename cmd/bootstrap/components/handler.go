package components

import (
	"meeting-rooms/internal/handler"
	"meeting-rooms/internal/handler/api"
	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/internal/pkg/config"

	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// HTTPModule is shared by every service.
var HTTPModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) *api.HealthHandler {
			return api.NewHealthHandler(cfg.Server.Name)
		},
		handler.NewRouter,
	),
)

var AuthHandlerModule = fx.Module("handler/auth",
	fx.Provide(
		api.NewAuthHandler,
		func(cfg config.Config) *middleware.IPRateLimiter {
			return middleware.NewIPRateLimiter(
				rate.Limit(cfg.RateLimit.LoginPerSecond),
				cfg.RateLimit.LoginBurst,
				cfg.RateLimit.IdleTTL,
			)
		},
	),
	fx.Invoke(handler.RegisterAuthRoutes),
)

var RoomHandlerModule = fx.Module("handler/room",
	fx.Provide(
		api.NewRoomHandler,
		func(cfg config.Config) *cache.Cache {
			return cache.New(cfg.Cache.RoomsTTL, cfg.Cache.CleanupInterval)
		},
	),
	fx.Invoke(func(r *handler.Router, h *api.RoomHandler, store *cache.Cache, cfg config.Config) {
		handler.RegisterRoomRoutes(r, h, store, cfg.Cache.RoomsTTL)
	}),
)

var BookingHandlerModule = fx.Module("handler/booking",
	fx.Provide(
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(func(r *handler.Router, h *api.BookingHandler, authMiddleware *middleware.AuthMiddleware, cfg config.Config) {
		if !cfg.Booking.RequireToken {
			authMiddleware = nil
		}
		handler.RegisterBookingRoutes(r, h, authMiddleware)
	}),
)

var WeatherHandlerModule = fx.Module("handler/weather",
	fx.Provide(
		api.NewWeatherHandler,
	),
	fx.Invoke(handler.RegisterWeatherRoutes),
)
