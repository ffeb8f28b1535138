package estimate

import "github.com/solarsizer/solarsizer/pkg/types"

// EstimateProduction returns the expected output of a system under the same
// environmental assumptions it was sized with. A system sized by
// RequiredSystemKW produces its target daily consumption back, so monthly
// production for such a system equals daily consumption times 30.
func EstimateProduction(systemKW, peakSunHours, performanceRatio float64) types.SystemDesign {
	monthly := systemKW * peakSunHours * 30 * performanceRatio
	return types.SystemDesign{
		SystemKW:             systemKW,
		MonthlyProductionKWH: monthly,
		AnnualProductionKWH:  monthly * 12,
	}
}
