//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-rooms/internal/domain/weather"
	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/usecase"
	usecasemock "meeting-rooms/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newWeatherUseCase(t *testing.T) (usecase.WeatherUseCase, *usecasemock.MockForecastStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := usecasemock.NewMockForecastStore(ctrl)
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	synth := weather.NewSynthesizer(weather.DefaultRules,
		weather.WithRandom(func(n int) int { return n - 1 }),
		weather.WithNow(func() time.Time { return now }),
	)
	return usecase.NewWeatherUseCase(store, synth, clock.NewMockClock(now), time.UTC, discardLogger), store
}

func TestWeatherUseCase_GetForecast(t *testing.T) {
	ctx := context.Background()

	t.Run("stored record is returned unchanged", func(t *testing.T) {
		uc, store := newWeatherUseCase(t)
		stored := &weather.Forecast{LocationID: "paris", DisplayName: "paris", Date: "2030-05-01", Temperature: 25, Condition: "Sunny"}
		store.EXPECT().Get(ctx, "paris", "2030-05-01").Return(stored, true, nil)

		got := uc.GetForecast(ctx, "Paris", "2030-05-01")

		assert.Equal(t, 25, got.Temperature)
		assert.Equal(t, "Paris", got.DisplayName)
		assert.Equal(t, weather.SourceStored, got.Source)
	})

	t.Run("miss generates and persists", func(t *testing.T) {
		uc, store := newWeatherUseCase(t)
		store.EXPECT().Get(ctx, "berlin", "2030-05-01").Return(nil, false, nil)
		store.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f weather.Forecast) error {
			assert.Equal(t, "berlin", f.LocationID)
			assert.Equal(t, 20, f.Temperature)
			return nil
		})

		got := uc.GetForecast(ctx, "Berlin", "2030-05-01")

		assert.Equal(t, 20, got.Temperature)
		assert.Equal(t, "Cloudy", got.Condition)
		assert.Equal(t, weather.SourceGenerated, got.Source)
	})

	t.Run("unknown location gets the default", func(t *testing.T) {
		uc, store := newWeatherUseCase(t)
		store.EXPECT().Get(ctx, "reykjavik", "2030-05-01").Return(nil, false, nil)
		store.EXPECT().Put(ctx, gomock.Any()).Return(nil)

		got := uc.GetForecast(ctx, "Reykjavik", "2030-05-01")

		assert.Equal(t, weather.DefaultTemperature, got.Temperature)
		assert.Equal(t, weather.DefaultCondition, got.Condition)
	})

	t.Run("store failures degrade to synthesis", func(t *testing.T) {
		uc, store := newWeatherUseCase(t)
		store.EXPECT().Get(ctx, "london", "2030-05-01").Return(nil, false, errors.New("redis: connection refused"))
		store.EXPECT().Put(ctx, gomock.Any()).Return(errors.New("redis: connection refused"))

		got := uc.GetForecast(ctx, "London", "2030-05-01")

		assert.Equal(t, 14, got.Temperature)
		assert.Equal(t, "Rainy", got.Condition)
	})

	t.Run("missing date means today", func(t *testing.T) {
		uc, store := newWeatherUseCase(t)
		store.EXPECT().Get(ctx, "paris", "2026-10-18").Return(nil, false, nil)
		store.EXPECT().Put(ctx, gomock.Any()).Return(nil)

		got := uc.GetForecast(ctx, "Paris", "  ")

		assert.Equal(t, "2026-10-18", got.Date)
	})

	t.Run("unparseable date means today", func(t *testing.T) {
		for _, raw := range []string{"garbage", "2026-02-30", "18/10/2026"} {
			uc, store := newWeatherUseCase(t)
			store.EXPECT().Get(ctx, "paris", "2026-10-18").Return(nil, false, nil)
			store.EXPECT().Put(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f weather.Forecast) error {
				assert.Equal(t, "2026-10-18", f.Date, raw)
				return nil
			})

			got := uc.GetForecast(ctx, "Paris", raw)

			assert.Equal(t, "2026-10-18", got.Date, raw)
		}
	})
}
