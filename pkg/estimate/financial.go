package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/solarsizer/solarsizer/pkg/types"
)

var wattsPerKW = decimal.NewFromInt(1000)

// EstimateFinancials returns the installed cost and simple payback for a
// system. Net cost is clamped at zero, an incentive larger than the base
// cost never produces a negative cost. Payback is absent when first-year
// savings are not positive.
func EstimateFinancials(systemKW, annualProductionKWH float64, a types.Assumptions) types.Financials {
	base := decimal.NewFromFloat(systemKW).Mul(wattsPerKW).Mul(a.CostPerWatt)
	net := base.Sub(a.Incentive)
	if net.IsNegative() {
		net = decimal.Zero
	}

	annualSavings := decimal.NewFromFloat(annualProductionKWH).Mul(a.ElectricityRate)
	fin := types.Financials{
		BaseCost:      base,
		NetCost:       net,
		AnnualSavings: annualSavings,
	}
	if annualSavings.IsPositive() {
		fin.PaybackYears = decimal.NullDecimal{
			Decimal: net.Div(annualSavings),
			Valid:   true,
		}
	}
	return fin
}
