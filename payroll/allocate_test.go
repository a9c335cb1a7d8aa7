package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateHours(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		total                 float64
		regular, ot125, ot150 float64
	}{
		{0, 0, 0, 0},
		{4.5, 4.5, 0, 0},
		{8, 8, 0, 0},       // exactly the regular limit
		{9, 8, 1, 0},       // one hour into the 125% tier
		{10, 8, 2, 0},      // exactly the 125% ceiling
		{12, 8, 2, 2},      // spills into the 150% tier
		{24, 8, 2, 14},
		{8.25, 8, 0.25, 0},
	}

	for _, tc := range cases {
		regular, ot125, ot150 := allocateHours(tc.total, cfg)
		assert.Equal(t, tc.regular, regular, "regular for %.2f", tc.total)
		assert.Equal(t, tc.ot125, ot125, "ot125 for %.2f", tc.total)
		assert.Equal(t, tc.ot150, ot150, "ot150 for %.2f", tc.total)

		// Tiers always sum back to the total.
		assert.InDelta(t, tc.total, regular+ot125+ot150, 0.0001)
	}
}

func TestAllocateHours_CustomThresholds(t *testing.T) {
	cfg := Config{RegularLimit: 6, Limit125: 9}.Normalized()
	regular, ot125, ot150 := allocateHours(11, cfg)
	assert.Equal(t, 6.0, regular)
	assert.Equal(t, 3.0, ot125)
	assert.Equal(t, 2.0, ot150)
}

func TestPriceTiers(t *testing.T) {
	cfg := DefaultConfig() // 75 / 93.75 / 112.50

	// 8 regular + 1 at 125% = 600 + 93.75
	got := priceTiers(8, 1, 0, cfg)
	require.True(t, got.Equal(decimal.NewFromFloat(693.75)), "got %s", got)

	// Weekend override prices the whole day at 150%.
	got = priceWeekend(8, cfg)
	require.True(t, got.Equal(decimal.NewFromFloat(900)), "got %s", got)
}

func TestConfigNormalized_DerivedRates(t *testing.T) {
	cfg := Config{RateRegular: decimal.NewFromInt(100)}.Normalized()
	assert.True(t, cfg.Rate125.Equal(decimal.NewFromInt(125)))
	assert.True(t, cfg.Rate150.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 8.0, cfg.RegularLimit)
	assert.Equal(t, 10.0, cfg.Limit125)
	assert.Equal(t, DefaultWeekendWindow(), cfg.Window)

	// Explicit rates are left alone.
	cfg = Config{
		RateRegular: decimal.NewFromInt(100),
		Rate125:     decimal.NewFromInt(110),
	}.Normalized()
	assert.True(t, cfg.Rate125.Equal(decimal.NewFromInt(110)))
}
