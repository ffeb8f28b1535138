package estimate

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/levenlabs/go-lflag"
	"github.com/shopspring/decimal"

	"github.com/solarsizer/solarsizer/pkg/log"
	"github.com/solarsizer/solarsizer/pkg/types"
)

// Configured sets up a Calculator from flags. Exactly one of -monthly-kwh or
// -daily-kwh must be sent. Numeric flags are strings so we can parse and
// validate them ourselves after lflag resolves flag/env precedence.
func Configured() *Calculator {
	c := &Calculator{}

	monthlyKWH := lflag.String("monthly-kwh", "", "Average monthly consumption in kWh (mutually exclusive with -daily-kwh)")
	dailyKWH := lflag.String("daily-kwh", "", "Average daily consumption in kWh (mutually exclusive with -monthly-kwh)")
	peakSunHours := lflag.String("peak-sun-hours", "4.5", "Equivalent hours per day of full-intensity sunlight at the site")
	performanceRatio := lflag.String("performance-ratio", "0.78", "Fraction of theoretical output delivered after system losses")
	panelWatt := lflag.String("panel-watt", "400", "Panel rating in watts")
	panelArea := lflag.String("panel-area", "1.7", "Panel area in square meters")
	costPerWatt := lflag.String("cost-per-watt", "2.50", "Installed cost per watt")
	incentive := lflag.String("incentive", "0", "One-time incentive deducted from the installed cost")
	electricityRate := lflag.String("electricity-rate", "0.15", "Retail electricity rate in dollars per kWh")
	escalation := lflag.String("escalation", "0.02", "Annual fractional increase in the electricity rate")
	degradation := lflag.String("degradation", "0.005", "Annual fractional decline in panel output")
	horizon := lflag.String("horizon", "25", "Projection horizon in years")
	roundUp := lflag.Bool("round-up", false, "Always round the panel count up instead of to the nearest whole panel")
	noArea := lflag.Bool("no-area", false, "Skip the array area computation")

	lflag.Do(func() {
		ctx := context.Background()
		fail := func(msg string, err error) {
			log.Ctx(ctx).ErrorContext(ctx, msg, slog.Any("error", err))
			os.Exit(1)
		}

		switch {
		case *monthlyKWH == "" && *dailyKWH == "":
			fail("one of -monthly-kwh or -daily-kwh is required", nil)
		case *monthlyKWH != "" && *dailyKWH != "":
			fail("-monthly-kwh and -daily-kwh are mutually exclusive", nil)
		case *monthlyKWH != "":
			v, err := strconv.ParseFloat(*monthlyKWH, 64)
			if err != nil {
				fail("invalid -monthly-kwh", err)
			}
			if v <= 0 {
				fail("-monthly-kwh must be positive", nil)
			}
			c.monthlyKWH = v
		default:
			v, err := strconv.ParseFloat(*dailyKWH, 64)
			if err != nil {
				fail("invalid -daily-kwh", err)
			}
			if v <= 0 {
				fail("-daily-kwh must be positive", nil)
			}
			c.dailyKWH = v
		}

		parseFloat := func(name, s string) float64 {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				fail("invalid -"+name, err)
			}
			return v
		}
		parseDecimal := func(name, s string) decimal.Decimal {
			d, err := decimal.NewFromString(s)
			if err != nil {
				fail("invalid -"+name, err)
			}
			return d
		}

		a := &c.assumptions
		a.PeakSunHours = parseFloat("peak-sun-hours", *peakSunHours)
		a.PerformanceRatio = parseFloat("performance-ratio", *performanceRatio)
		a.PanelWatts = parseFloat("panel-watt", *panelWatt)
		a.PanelAreaM2 = parseFloat("panel-area", *panelArea)
		a.Degradation = parseFloat("degradation", *degradation)
		a.CostPerWatt = parseDecimal("cost-per-watt", *costPerWatt)
		a.Incentive = parseDecimal("incentive", *incentive)
		a.ElectricityRate = parseDecimal("electricity-rate", *electricityRate)
		a.Escalation = parseDecimal("escalation", *escalation)

		h, err := strconv.Atoi(*horizon)
		if err != nil {
			fail("invalid -horizon", err)
		}
		if h < 1 {
			fail("-horizon must be at least 1 year", nil)
		}
		a.HorizonYears = h

		if a.PanelWatts <= 0 {
			fail("-panel-watt must be positive", nil)
		}

		c.rounding = types.RoundNearest
		if *roundUp {
			c.rounding = types.RoundUp
		}
		c.includeArea = !*noArea

		log.Ctx(ctx).DebugContext(ctx, "assumptions configured",
			slog.Float64("peakSunHours", a.PeakSunHours),
			slog.Float64("performanceRatio", a.PerformanceRatio),
			slog.Float64("panelWatts", a.PanelWatts),
			slog.String("costPerWatt", a.CostPerWatt.String()),
			slog.String("electricityRate", a.ElectricityRate.String()),
			slog.Int("horizonYears", a.HorizonYears),
			slog.String("rounding", string(c.rounding)),
			slog.Bool("includeArea", c.includeArea))
	})

	return c
}

// Calculator runs the estimation pipeline over a fixed set of assumptions.
// Exactly one of dailyKWH or monthlyKWH is set, the other is zero.
type Calculator struct {
	assumptions types.Assumptions
	rounding    types.RoundingMode
	includeArea bool
	dailyKWH    float64
	monthlyKWH  float64
}
