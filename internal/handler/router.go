package handler

import (
	"net/http"
	"time"

	"meeting-rooms/internal/handler/api"
	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Router is an engine with the shared middleware installed. Service routes
// are registered on it so they sit behind that middleware.
type Router struct {
	engine *gin.Engine
}

// NewRouter installs what every service shares: middleware, /health and, in
// debug mode, the swagger UI.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, health *api.HealthHandler) *Router {
	setupMiddleware(engine, cfg, logger)

	engine.GET("/health", health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return &Router{engine: engine}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func RegisterAuthRoutes(r *Router, h *api.AuthHandler, limiter *middleware.IPRateLimiter) {
	addRoutes(&r.engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Login, Mw: []gin.HandlerFunc{middleware.RateLimiter(limiter)}},
	})
}

func RegisterRoomRoutes(r *Router, h *api.RoomHandler, store *cache.Cache, ttl time.Duration) {
	rooms := r.engine.Group("/rooms")
	rooms.Use(middleware.ResponseCache(store, ttl))
	{
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.ListRooms},
			{Method: http.MethodGet, Path: "/:id", Handler: h.GetRoom},
		})
	}
}

// RegisterBookingRoutes puts the token check in front of every booking route
// when authMiddleware is non-nil.
func RegisterBookingRoutes(r *Router, h *api.BookingHandler, authMiddleware *middleware.AuthMiddleware) {
	bookings := r.engine.Group("/bookings")
	if authMiddleware != nil {
		bookings.Use(authMiddleware.RequireAuth())
	}
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.CreateBooking},
			{Method: http.MethodGet, Path: "/user/:id", Handler: h.ListUserBookings},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.DeleteBooking},
		})
	}
}

func RegisterWeatherRoutes(r *Router, h *api.WeatherHandler) {
	addRoutes(&r.engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/weather", Handler: h.GetWeather},
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, rt := range rs {
		h := rt.Handler
		if len(rt.Mw) > 0 {
			h = chainHandlers(append(rt.Mw, rt.Handler)...)
		}
		switch rt.Method {
		case http.MethodGet:
			g.GET(rt.Path, h)
		case http.MethodPost:
			g.POST(rt.Path, h)
		case http.MethodDelete:
			g.DELETE(rt.Path, h)
		default:
			g.Handle(rt.Method, rt.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
