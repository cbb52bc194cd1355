package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Run loads .env, builds the service graph and blocks until a signal arrives.
func Run(service fx.Option) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	// release unless told otherwise, so a misconfigured deploy never serves swagger
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	app := fx.New(
		service,
		ServerModule,
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	os.Exit(sig.ExitCode)
}
