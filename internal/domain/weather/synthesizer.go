package weather

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Rule maps locations containing Match to a uniform integer temperature in [Min, Max].
type Rule struct {
	Match     string
	Min       int
	Max       int
	Condition string
}

const (
	DefaultTemperature = 18
	DefaultCondition   = "Partly Cloudy"
)

var DefaultRules = []Rule{
	{Match: "london", Min: 9, Max: 14, Condition: "Rainy"},
	{Match: "paris", Min: 24, Max: 29, Condition: "Sunny"},
	{Match: "berlin", Min: 15, Max: 20, Condition: "Cloudy"},
}

type Synthesizer struct {
	rules []Rule
	// intN returns a value in [0, n)
	intN func(n int) int
	now  func() time.Time
}

type SynthesizerOption func(*Synthesizer)

func WithRandom(intN func(n int) int) SynthesizerOption {
	return func(s *Synthesizer) { s.intN = intN }
}

func WithNow(now func() time.Time) SynthesizerOption {
	return func(s *Synthesizer) { s.now = now }
}

func NewSynthesizer(rules []Rule, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		rules: rules,
		intN:  rand.IntN,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewDefaultSynthesizer() *Synthesizer {
	return NewSynthesizer(DefaultRules)
}

// Synthesize builds a generated forecast. First matching rule wins; unmatched
// locations get DefaultTemperature exactly.
func (s *Synthesizer) Synthesize(location, date string) Forecast {
	id := LocationID(location)
	f := Forecast{
		LocationID:  id,
		DisplayName: strings.TrimSpace(location),
		Date:        date,
		Temperature: DefaultTemperature,
		Condition:   DefaultCondition,
		Source:      SourceGenerated,
		CreatedAt:   s.now().UTC(),
	}

	for _, r := range s.rules {
		if strings.Contains(id, r.Match) {
			f.Temperature = r.Min + s.intN(r.Max-r.Min+1)
			f.Condition = r.Condition
			break
		}
	}
	return f
}
