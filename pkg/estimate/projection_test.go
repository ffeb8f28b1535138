package estimate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	const annualKWH = 10800.0

	t.Run("recurrence and totals", func(t *testing.T) {
		a := testAssumptions()
		proj := Project(annualKWH, decimal.NewFromInt(20000), a)
		require.Len(t, proj.Years, a.HorizonYears)

		// year 1 is undegraded production at the unescalated rate
		assert.Equal(t, 1, proj.Years[0].Year)
		assert.Equal(t, annualKWH, proj.Years[0].ProductionKWH)
		assert.True(t, proj.Years[0].Savings.Equal(decimal.NewFromInt(1620)))

		price := a.ElectricityRate
		growth := decimal.NewFromInt(1).Add(a.Escalation)
		total := decimal.Zero
		for i, y := range proj.Years {
			assert.Equal(t, i+1, y.Year)
			if i > 0 {
				assert.InDelta(t, proj.Years[i-1].ProductionKWH*(1-a.Degradation), y.ProductionKWH, 1e-9)
			}
			assert.True(t, y.Savings.Equal(decimal.NewFromFloat(y.ProductionKWH).Mul(price)),
				"year %d savings should be production times escalated price", y.Year)
			price = price.Mul(growth)
			total = total.Add(y.Savings)
		}
		assert.True(t, proj.TotalSavings.Equal(total))
	})

	t.Run("horizon of one", func(t *testing.T) {
		a := testAssumptions()
		a.HorizonYears = 1
		proj := Project(annualKWH, decimal.NewFromInt(20000), a)
		require.Len(t, proj.Years, 1)
		assert.True(t, proj.TotalSavings.Equal(proj.Years[0].Savings))
	})

	t.Run("break even year", func(t *testing.T) {
		a := testAssumptions()
		// year 1 saves 1620, year 2 saves ~1644.57, cumulative passes 3000 in year 2
		proj := Project(annualKWH, decimal.NewFromInt(3000), a)
		assert.Equal(t, 2, proj.BreakEvenYear)
	})

	t.Run("never breaks even", func(t *testing.T) {
		a := testAssumptions()
		proj := Project(annualKWH, decimal.NewFromInt(1000000000), a)
		assert.Zero(t, proj.BreakEvenYear)
	})

	t.Run("zero rate never breaks even", func(t *testing.T) {
		a := testAssumptions()
		a.ElectricityRate = decimal.Zero
		proj := Project(annualKWH, decimal.NewFromInt(100), a)
		assert.Zero(t, proj.BreakEvenYear)
		assert.True(t, proj.TotalSavings.IsZero())
	})
}
