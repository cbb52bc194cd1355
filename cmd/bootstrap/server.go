package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"meeting-rooms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		NewEngine,
	),
	fx.Invoke(StartServer),
)

func NewEngine() *gin.Engine {
	return gin.New()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("server starting", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("server stopping")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
