package booking

import (
	"errors"
	"math"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in minor units (cents). Prices are stored as DECIMAL(10,2).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromAmount rounds a decimal amount (e.g. 199.995) half away from zero to cents.
func NewMoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// ApplyRate returns m scaled by basisPoints/10000, rounded to the nearest cent.
func (m Money) ApplyRate(basisPoints int64) Money {
	scaled := m.cents * basisPoints
	q := scaled / 10000
	if r := scaled % 10000; r*2 >= 10000 {
		q++
	}
	return Money{cents: q}
}
