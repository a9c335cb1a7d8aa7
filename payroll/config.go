package payroll

import "github.com/shopspring/decimal"

// Config carries every tunable the engine depends on. It is passed into the
// Calculator explicitly so Compute stays a pure function of (records, config);
// nothing in this package reads ambient state.
type Config struct {
	// Hourly rates. Rate125 and Rate150 default to 1.25x and 1.5x RateRegular
	// when left zero; Normalized applies the derivation.
	RateRegular decimal.Decimal
	Rate125     decimal.Decimal
	Rate150     decimal.Decimal

	// RegularLimit is the number of hours paid at the regular rate (default 8).
	// Limit125 is the ceiling of the 125% tier (default 10); everything above
	// it is paid at 150%.
	RegularLimit float64
	Limit125     float64

	// Window is the recurring weekly premium window. A day with any period
	// overlapping it is reclassified entirely to the 150% tier.
	Window WeekendWindow
}

// DefaultRateRegular is the fallback hourly rate when none is configured.
var DefaultRateRegular = decimal.NewFromInt(75)

// DefaultConfig returns the standard rules: 75/hour, tiers at 8 and 10 hours,
// premium window Friday 17:00 through Sunday 05:00.
func DefaultConfig() Config {
	return Config{RateRegular: DefaultRateRegular}.Normalized()
}

// Normalized fills every zero field with its default or derived value.
// Calling it twice is a no-op.
func (c Config) Normalized() Config {
	if c.RateRegular.IsZero() {
		c.RateRegular = DefaultRateRegular
	}
	if c.Rate125.IsZero() {
		c.Rate125 = c.RateRegular.Mul(decimal.NewFromFloat(1.25))
	}
	if c.Rate150.IsZero() {
		c.Rate150 = c.RateRegular.Mul(decimal.NewFromFloat(1.5))
	}
	if c.RegularLimit == 0 {
		c.RegularLimit = 8
	}
	if c.Limit125 == 0 {
		c.Limit125 = 10
	}
	if c.Window.isZero() {
		c.Window = DefaultWeekendWindow()
	}
	return c
}
