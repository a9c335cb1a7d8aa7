package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// currencyPrecision is the rounding applied to every money amount.
const currencyPrecision = 2

// allocateHours splits a day's total hours into the three pay tiers. The
// caller clamps negative totals before reaching here; allocation itself only
// guarantees the split sums back to the input (within hour rounding).
func allocateHours(total float64, cfg Config) (regular, ot125, ot150 float64) {
	regular = math.Min(total, cfg.RegularLimit)
	remaining := math.Max(0, total-regular)
	ot125 = math.Min(remaining, math.Max(0, cfg.Limit125-cfg.RegularLimit))
	ot150 = math.Max(0, total-regular-ot125)
	return roundHours(regular), roundHours(ot125), roundHours(ot150)
}

// priceTiers prices an allocated day at the configured rates.
func priceTiers(regular, ot125, ot150 float64, cfg Config) decimal.Decimal {
	total := decimal.NewFromFloat(regular).Mul(cfg.RateRegular).
		Add(decimal.NewFromFloat(ot125).Mul(cfg.Rate125)).
		Add(decimal.NewFromFloat(ot150).Mul(cfg.Rate150))
	return total.Round(currencyPrecision)
}

// priceWeekend prices a whole day at the top rate, the weekend override.
func priceWeekend(total float64, cfg Config) decimal.Decimal {
	return decimal.NewFromFloat(total).Mul(cfg.Rate150).Round(currencyPrecision)
}
