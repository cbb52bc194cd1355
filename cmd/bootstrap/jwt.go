package bootstrap

import (
	"time"

	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/pkg/errs"
	"meeting-rooms/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService fails startup when a token is needed but JWT_SECRET is unset.
func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}

	needsSecret := (cfg.Server.Name == config.AuthService.Name && cfg.Auth.IssueToken) ||
		(cfg.Server.Name == config.BookingService.Name && cfg.Booking.RequireToken)
	if needsSecret && cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET is required")
	}

	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
