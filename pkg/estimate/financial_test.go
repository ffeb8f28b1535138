package estimate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarsizer/solarsizer/pkg/types"
)

func testAssumptions() types.Assumptions {
	return types.Assumptions{
		PeakSunHours:     4.5,
		PerformanceRatio: 0.78,
		PanelWatts:       400,
		PanelAreaM2:      1.7,
		CostPerWatt:      decimal.RequireFromString("2.50"),
		Incentive:        decimal.Zero,
		ElectricityRate:  decimal.RequireFromString("0.15"),
		Escalation:       decimal.RequireFromString("0.02"),
		Degradation:      0.005,
		HorizonYears:     25,
	}
}

func TestEstimateFinancials(t *testing.T) {
	systemKW := 30.0 / (4.5 * 0.78)
	annualKWH := 30.0 * 30 * 12 // 10800, the inverse-sized production

	t.Run("base cost at defaults", func(t *testing.T) {
		fin := EstimateFinancials(systemKW, annualKWH, testAssumptions())
		assert.InDelta(t, 21367.52, fin.BaseCost.InexactFloat64(), 0.01)
		assert.True(t, fin.NetCost.Equal(fin.BaseCost), "net cost should equal base cost with no incentive")
	})

	t.Run("net cost clamped at zero", func(t *testing.T) {
		a := testAssumptions()
		a.Incentive = decimal.NewFromInt(1000000)
		fin := EstimateFinancials(systemKW, annualKWH, a)
		assert.True(t, fin.NetCost.IsZero(), "net cost should never be negative")
	})

	t.Run("simple payback", func(t *testing.T) {
		fin := EstimateFinancials(systemKW, annualKWH, testAssumptions())
		require.True(t, fin.PaybackYears.Valid)
		// 10800 kWh * $0.15 = $1620/yr
		assert.True(t, fin.AnnualSavings.Equal(decimal.NewFromInt(1620)))
		assert.InDelta(t, 21367.52/1620, fin.PaybackYears.Decimal.InexactFloat64(), 0.01)
	})

	t.Run("payback undefined at zero rate", func(t *testing.T) {
		a := testAssumptions()
		a.ElectricityRate = decimal.Zero
		fin := EstimateFinancials(systemKW, annualKWH, a)
		assert.False(t, fin.PaybackYears.Valid)
	})

	t.Run("payback undefined with no production", func(t *testing.T) {
		fin := EstimateFinancials(systemKW, 0, testAssumptions())
		assert.False(t, fin.PaybackYears.Valid)
	})
}
