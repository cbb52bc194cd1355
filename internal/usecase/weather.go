package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/domain/weather"
	"meeting-rooms/internal/pkg/clock"
)

//go:generate mockgen -source=weather.go -destination=../../tests/mock/usecase/weather.go -package=usecasemock

type WeatherUseCase interface {
	GetForecast(ctx context.Context, location, date string) weather.Forecast
}

type weatherUseCaseImpl struct {
	store       ForecastStore
	synthesizer *weather.Synthesizer
	clock       clock.Clock
	location    *time.Location
	logger      *slog.Logger
}

func NewWeatherUseCase(store ForecastStore, synthesizer *weather.Synthesizer, clk clock.Clock, location *time.Location, logger *slog.Logger) WeatherUseCase {
	return &weatherUseCaseImpl{
		store:       store,
		synthesizer: synthesizer,
		clock:       clk,
		location:    location,
		logger:      logger,
	}
}

// GetForecast has no error path: store failures degrade to synthesis.
func (u *weatherUseCaseImpl) GetForecast(ctx context.Context, location, date string) weather.Forecast {
	date = u.resolveDate(ctx, date)
	locationID := weather.LocationID(location)

	stored, found, err := u.store.Get(ctx, locationID, date)
	switch {
	case err != nil:
		u.logger.WarnContext(ctx, "weather store read failed, generating forecast",
			slog.String("location_id", locationID),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
	case found:
		f := *stored
		f.Source = weather.SourceStored
		if strings.TrimSpace(location) != "" {
			f.DisplayName = strings.TrimSpace(location)
		}
		return f
	}

	generated := u.synthesizer.Synthesize(location, date)

	// last write wins when two misses race; both values come from the same rule
	if err := u.store.Put(ctx, generated); err != nil {
		u.logger.WarnContext(ctx, "failed to persist generated forecast",
			slog.String("location_id", locationID),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
	}

	return generated
}

// resolveDate normalises date to YYYY-MM-DD. Blank or unparseable input means
// today, so arbitrary query strings never become store keys.
func (u *weatherUseCaseImpl) resolveDate(ctx context.Context, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		d, err := booking.ParseDate(raw)
		if err == nil {
			return d.String()
		}
		u.logger.WarnContext(ctx, "invalid weather date, using today", slog.String("date", raw))
	}
	return booking.DateOf(clock.Today(u.clock, u.location)).String()
}
