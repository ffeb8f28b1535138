// Package estimate sizes a residential solar system from consumption and
// financial assumptions and projects its savings over a horizon of years.
// Every step is a closed-form formula over the configured assumptions, data
// flows strictly forward through the pipeline.
package estimate

import (
	"context"
	"log/slog"

	"github.com/solarsizer/solarsizer/pkg/log"
	"github.com/solarsizer/solarsizer/pkg/types"
)

// Run executes the full estimation pipeline. The only intrinsic failure is a
// non-positive peak-sun-hours or performance-ratio, which surfaces from the
// sizing step.
func (c *Calculator) Run(ctx context.Context) (types.Estimate, error) {
	a := c.assumptions

	// 1. Normalize consumption
	cons := NormalizeConsumption(c.dailyKWH, c.monthlyKWH)
	log.Ctx(ctx).DebugContext(ctx, "consumption normalized",
		slog.Float64("dailyKWH", cons.DailyKWH),
		slog.Float64("monthlyKWH", cons.MonthlyKWH))

	// 2. Size the system
	systemKW, err := RequiredSystemKW(cons.DailyKWH, a.PeakSunHours, a.PerformanceRatio)
	if err != nil {
		return types.Estimate{}, err
	}
	log.Ctx(ctx).DebugContext(ctx, "system sized", slog.Float64("systemKW", systemKW))

	// 3. Estimate production
	design := EstimateProduction(systemKW, a.PeakSunHours, a.PerformanceRatio)
	log.Ctx(ctx).DebugContext(ctx, "production estimated",
		slog.Float64("monthlyKWH", design.MonthlyProductionKWH),
		slog.Float64("annualKWH", design.AnnualProductionKWH))

	// 4. Size the array
	arr := EstimateArray(systemKW, a.PanelWatts, a.PanelAreaM2, c.rounding, c.includeArea)
	log.Ctx(ctx).DebugContext(ctx, "array sized",
		slog.Int("panels", arr.Panels),
		slog.Bool("areaComputed", arr.AreaComputed))

	// 5. Cost and payback
	fin := EstimateFinancials(systemKW, design.AnnualProductionKWH, a)
	log.Ctx(ctx).DebugContext(ctx, "financials estimated",
		slog.String("baseCost", fin.BaseCost.String()),
		slog.String("netCost", fin.NetCost.String()),
		slog.Bool("paybackDefined", fin.PaybackYears.Valid))

	// 6. Multi-year projection
	proj := Project(design.AnnualProductionKWH, fin.NetCost, a)
	log.Ctx(ctx).DebugContext(ctx, "projection complete",
		slog.Int("years", len(proj.Years)),
		slog.String("totalSavings", proj.TotalSavings.String()))

	return types.Estimate{
		Consumption: cons,
		Assumptions: a,
		Design:      design,
		Array:       arr,
		Financials:  fin,
		Projection:  proj,
	}, nil
}
