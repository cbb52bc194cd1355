package booking

import "math"

const (
	// ComfortTemperature is the temperature (°C) at which no surcharge applies.
	ComfortTemperature = 21.0
	// FallbackTemperature is used when the weather service cannot be reached.
	FallbackTemperature = 20.0
)

type SurchargeCalculator interface {
	Calculate(base Money, temperature float64) Surcharge
}

type Surcharge struct {
	// RateBasisPoints is the rate in 1/100 of a percent (1000 = 10%).
	RateBasisPoints int64
	Amount          Money
}

func (s Surcharge) Rate() float64 {
	return float64(s.RateBasisPoints) / 10000.0
}

// Tier applies RateBasisPoints once the temperature distance reaches MinDiff.
type Tier struct {
	MinDiff         float64
	RateBasisPoints int64
}

type TieredSurchargeCalculator struct {
	Comfort float64
	// sorted by MinDiff ascending
	Tiers []Tier
}

func NewDefaultSurchargeCalculator() *TieredSurchargeCalculator {
	return &TieredSurchargeCalculator{
		Comfort: ComfortTemperature,
		Tiers: []Tier{
			{MinDiff: 0, RateBasisPoints: 0},
			{MinDiff: 2, RateBasisPoints: 1000},
			{MinDiff: 5, RateBasisPoints: 2000},
			{MinDiff: 10, RateBasisPoints: 3000},
			{MinDiff: 20, RateBasisPoints: 5000},
		},
	}
}

func (c *TieredSurchargeCalculator) RateFor(temperature float64) int64 {
	diff := math.Abs(c.Comfort - temperature)
	var rate int64
	for _, tier := range c.Tiers {
		if diff < tier.MinDiff {
			break
		}
		rate = tier.RateBasisPoints
	}
	return rate
}

func (c *TieredSurchargeCalculator) Calculate(base Money, temperature float64) Surcharge {
	rate := c.RateFor(temperature)
	return Surcharge{
		RateBasisPoints: rate,
		Amount:          base.ApplyRate(rate),
	}
}
