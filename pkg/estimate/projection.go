package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/solarsizer/solarsizer/pkg/types"
)

// Project runs the year-by-year savings projection over the horizon.
// Production decays by the degradation rate and the electricity price grows
// by the escalation rate, both compounding annually. Year 1 uses the
// undegraded annual production at the unescalated rate.
func Project(annualProductionKWH float64, netCost decimal.Decimal, a types.Assumptions) types.Projection {
	price := a.ElectricityRate
	growth := decimal.NewFromInt(1).Add(a.Escalation)
	production := annualProductionKWH

	proj := types.Projection{
		Years: make([]types.YearResult, 0, a.HorizonYears),
	}
	total := decimal.Zero
	for year := 1; year <= a.HorizonYears; year++ {
		saving := decimal.NewFromFloat(production).Mul(price)
		total = total.Add(saving)
		proj.Years = append(proj.Years, types.YearResult{
			Year:          year,
			ProductionKWH: production,
			Savings:       saving,
		})
		if proj.BreakEvenYear == 0 && saving.IsPositive() && total.GreaterThanOrEqual(netCost) {
			proj.BreakEvenYear = year
		}

		production *= 1 - a.Degradation
		price = price.Mul(growth)
	}
	proj.TotalSavings = total
	return proj
}
