//go:build unit

package booking_test

import (
	"testing"

	"meeting-rooms/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredSurchargeCalculator_RateFor(t *testing.T) {
	calc := booking.NewDefaultSurchargeCalculator()

	testCases := []struct {
		name        string
		temperature float64
		expectBP    int64
	}{
		{name: "exactly comfortable", temperature: 21, expectBP: 0},
		{name: "diff 1.9 below", temperature: 19.1, expectBP: 0},
		{name: "diff 1.9 above", temperature: 22.9, expectBP: 0},
		{name: "boundary diff=2 is 10%", temperature: 23, expectBP: 1000},
		{name: "boundary diff=2 below is 10%", temperature: 19, expectBP: 1000},
		{name: "diff 4.9", temperature: 25.9, expectBP: 1000},
		{name: "boundary diff=5 is 20%", temperature: 26, expectBP: 2000},
		{name: "diff 6 (Paris example)", temperature: 27, expectBP: 2000},
		{name: "diff 9.99", temperature: 11.01, expectBP: 2000},
		{name: "boundary diff=10 is 30%", temperature: 11, expectBP: 3000},
		{name: "diff 19.5", temperature: 1.5, expectBP: 3000},
		{name: "boundary diff=20 is 50%", temperature: 1, expectBP: 5000},
		{name: "boundary diff=20 above is 50%", temperature: 41, expectBP: 5000},
		{name: "far below freezing", temperature: -30, expectBP: 5000},
		{name: "fallback temperature", temperature: booking.FallbackTemperature, expectBP: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectBP, calc.RateFor(tc.temperature))
		})
	}
}

func TestTieredSurchargeCalculator_Calculate(t *testing.T) {
	calc := booking.NewDefaultSurchargeCalculator()
	base, err := booking.NewMoneyFromAmount(200.00)
	require.NoError(t, err)

	t.Run("no surcharge under diff 2", func(t *testing.T) {
		s := calc.Calculate(base, 22)
		assert.Equal(t, int64(0), s.Amount.Cents())
		assert.Equal(t, 0.0, s.Rate())
	})

	t.Run("surcharge is exactly the tier percentage of base", func(t *testing.T) {
		for _, tc := range []struct {
			temperature float64
			cents       int64
		}{
			{temperature: 24, cents: 2000},  // 10%
			{temperature: 27, cents: 4000},  // 20%
			{temperature: 10, cents: 6000},  // 30%
			{temperature: -5, cents: 10000}, // 50%
		} {
			s := calc.Calculate(base, tc.temperature)
			assert.Equal(t, tc.cents, s.Amount.Cents(), "temperature %v", tc.temperature)
		}
	})

	t.Run("rounds to the nearest cent", func(t *testing.T) {
		odd, err := booking.NewMoneyFromAmount(99.99)
		require.NoError(t, err)

		// 9999 * 10% = 999.9 cents
		s := calc.Calculate(odd, 24)
		assert.Equal(t, int64(1000), s.Amount.Cents())
	})
}

func TestNewQuote(t *testing.T) {
	price, err := booking.NewMoneyFromAmount(200.00)
	require.NoError(t, err)
	date, err := booking.ParseDate("2030-05-01")
	require.NoError(t, err)

	room := booking.RoomSnapshot{ID: 1, Name: "Louvre Room", Location: "Paris", PricePerHour: price}
	q := booking.NewQuote(room, date, 27, booking.NewDefaultSurchargeCalculator())

	assert.Equal(t, 200.00, q.BasePrice().Amount())
	assert.Equal(t, 40.00, q.Surcharge.Amount.Amount())
	assert.Equal(t, 0.2, q.Surcharge.Rate())
	assert.Equal(t, 240.00, q.Total.Amount())
	assert.Equal(t, "2030-05-01", q.Date.String())
}
