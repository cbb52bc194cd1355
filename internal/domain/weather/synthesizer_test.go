//go:build unit

package weather_test

import (
	"testing"
	"time"

	"meeting-rooms/internal/domain/weather"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizer_Ranges(t *testing.T) {
	s := weather.NewDefaultSynthesizer()

	testCases := []struct {
		location  string
		min, max  int
		condition string
	}{
		{location: "London", min: 9, max: 14, condition: "Rainy"},
		{location: "Greater LONDON area", min: 9, max: 14, condition: "Rainy"},
		{location: "Paris", min: 24, max: 29, condition: "Sunny"},
		{location: "paris-nord", min: 24, max: 29, condition: "Sunny"},
		{location: "Berlin", min: 15, max: 20, condition: "Cloudy"},
	}

	for _, tc := range testCases {
		t.Run(tc.location, func(t *testing.T) {
			for range 200 {
				f := s.Synthesize(tc.location, "2030-01-01")
				assert.GreaterOrEqual(t, f.Temperature, tc.min)
				assert.LessOrEqual(t, f.Temperature, tc.max)
				assert.Equal(t, tc.condition, f.Condition)
				assert.Equal(t, weather.SourceGenerated, f.Source)
			}
		})
	}
}

func TestSynthesizer_Bounds(t *testing.T) {
	lowest := weather.NewSynthesizer(weather.DefaultRules, weather.WithRandom(func(int) int { return 0 }))
	highest := weather.NewSynthesizer(weather.DefaultRules, weather.WithRandom(func(n int) int { return n - 1 }))

	assert.Equal(t, 9, lowest.Synthesize("London", "2030-01-01").Temperature)
	assert.Equal(t, 14, highest.Synthesize("London", "2030-01-01").Temperature)
	assert.Equal(t, 24, lowest.Synthesize("Paris", "2030-01-01").Temperature)
	assert.Equal(t, 29, highest.Synthesize("Paris", "2030-01-01").Temperature)
}

func TestSynthesizer_UnknownLocation(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	s := weather.NewSynthesizer(weather.DefaultRules,
		weather.WithRandom(func(int) int { panic("random must not be used for unknown locations") }),
		weather.WithNow(func() time.Time { return now }),
	)

	f := s.Synthesize(" Tokyo ", "2030-01-01")

	assert.Equal(t, weather.Forecast{
		LocationID:  "tokyo",
		DisplayName: "Tokyo",
		Date:        "2030-01-01",
		Temperature: weather.DefaultTemperature,
		Condition:   weather.DefaultCondition,
		Source:      weather.SourceGenerated,
		CreatedAt:   now,
	}, f)
}

func TestRangesAreDisjoint(t *testing.T) {
	rules := weather.DefaultRules
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			overlap := rules[i].Min <= rules[j].Max && rules[j].Min <= rules[i].Max
			assert.False(t, overlap, "%s overlaps %s", rules[i].Match, rules[j].Match)
		}
	}
}
