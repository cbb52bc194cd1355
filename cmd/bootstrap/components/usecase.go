package components

import (
	"log/slog"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/domain/weather"
	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/pkg/jwt"
	"meeting-rooms/internal/pkg/password"
	"meeting-rooms/internal/usecase"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var AuthUseCaseModule = fx.Module("usecase/auth",
	fx.Provide(
		func(cfg config.Config) (password.Verifier, error) {
			return password.NewVerifier(cfg.Auth.PasswordMode)
		},
		NewAuthUseCase,
	),
)

var RoomUseCaseModule = fx.Module("usecase/room",
	fx.Provide(
		usecase.NewRoomUseCase,
	),
)

var BookingUseCaseModule = fx.Module("usecase/booking",
	fx.Provide(
		fx.Annotate(
			booking.NewDefaultSurchargeCalculator,
			fx.As(new(booking.SurchargeCalculator)),
		),
		NewBookingUseCase,
		usecase.NewTokenValidator,
	),
)

var WeatherUseCaseModule = fx.Module("usecase/weather",
	fx.Provide(
		weather.NewDefaultSynthesizer,
		NewWeatherUseCase,
	),
)

func NewAuthUseCase(users usecase.UserReadStore, verifier password.Verifier, jwtService *jwt.Service, cfg config.Config, logger *slog.Logger) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, verifier, jwtService, cfg.Auth.IssueToken, logger)
}

func NewBookingUseCase(
	rooms usecase.RoomCatalog,
	weatherProvider usecase.WeatherProvider,
	repo usecase.BookingRepository,
	publisher usecase.EventPublisher,
	calculator booking.SurchargeCalculator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(rooms, weatherProvider, repo, publisher, calculator, clk, cfg.Booking.Location(), logger)
}

func NewWeatherUseCase(store usecase.ForecastStore, synthesizer *weather.Synthesizer, clk clock.Clock, cfg config.Config, logger *slog.Logger) usecase.WeatherUseCase {
	return usecase.NewWeatherUseCase(store, synthesizer, clk, cfg.Booking.Location(), logger)
}
