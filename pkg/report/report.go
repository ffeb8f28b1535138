// Package report renders an estimate as a full human-readable report, a
// single-line summary, or CSV. Rendering is a pure consumer of the computed
// estimate, it never recalculates anything.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/levenlabs/go-lflag"
	"github.com/shopspring/decimal"

	"github.com/solarsizer/solarsizer/pkg/log"
	"github.com/solarsizer/solarsizer/pkg/types"
)

var twelve = decimal.NewFromInt(12)

// Mode selects the output format.
type Mode string

const (
	ModeFull  Mode = "full"
	ModeQuiet Mode = "quiet"
	ModeCSV   Mode = "csv"
)

// Configured sets up a Renderer writing to stdout with the mode from flags.
func Configured() *Renderer {
	r := &Renderer{out: os.Stdout, mode: ModeFull}

	mode := lflag.String("output", string(ModeFull), "Output mode: full, quiet, or csv")

	lflag.Do(func() {
		switch Mode(*mode) {
		case ModeFull, ModeQuiet, ModeCSV:
			r.mode = Mode(*mode)
		default:
			ctx := context.Background()
			log.Ctx(ctx).ErrorContext(ctx, "invalid -output mode", slog.String("mode", *mode))
			os.Exit(1)
		}
	})

	return r
}

// Renderer writes an estimate to out in a single fixed mode.
type Renderer struct {
	out  io.Writer
	mode Mode
}

// Render writes the estimate in the configured mode.
func (r *Renderer) Render(est types.Estimate) error {
	switch r.mode {
	case ModeQuiet:
		return r.renderQuiet(est)
	case ModeCSV:
		return r.renderCSV(est)
	default:
		return r.renderFull(est)
	}
}

func (r *Renderer) renderQuiet(est types.Estimate) error {
	payback := "n/a"
	if est.Financials.PaybackYears.Valid {
		payback = est.Financials.PaybackYears.Decimal.StringFixed(1) + "y"
	}
	_, err := fmt.Fprintf(r.out, "%.2f kW | %d panels | net $%s | payback %s | %d-yr savings $%s\n",
		est.Design.SystemKW,
		est.Array.Panels,
		est.Financials.NetCost.StringFixed(2),
		payback,
		est.Assumptions.HorizonYears,
		est.Projection.TotalSavings.StringFixed(2))
	return err
}

func (r *Renderer) renderFull(est types.Estimate) error {
	w := &errWriter{out: r.out}

	w.printf("Residential Solar Estimate\n")
	w.printf("--------------------------\n")
	w.printf("Consumption:         %.2f kWh/day (%.2f kWh/month)\n",
		est.Consumption.DailyKWH, est.Consumption.MonthlyKWH)
	w.printf("System size:         %.2f kW\n", est.Design.SystemKW)
	w.printf("Panels:              %d x %.0f W\n", est.Array.Panels, est.Assumptions.PanelWatts)
	if est.Array.AreaComputed {
		w.printf("Array area:          %.1f m2\n", est.Array.AreaM2)
	}
	w.printf("Production:          %.2f kWh/month (%.2f kWh/year)\n",
		est.Design.MonthlyProductionKWH, est.Design.AnnualProductionKWH)
	w.printf("Gross cost:          $%s\n", est.Financials.BaseCost.StringFixed(2))
	w.printf("Net cost:            $%s (after $%s incentive)\n",
		est.Financials.NetCost.StringFixed(2), est.Assumptions.Incentive.StringFixed(2))
	w.printf("First-year savings:  $%s ($%s/month)\n",
		est.Financials.AnnualSavings.StringFixed(2),
		est.Financials.AnnualSavings.DivRound(twelve, 2).StringFixed(2))
	if est.Financials.PaybackYears.Valid {
		w.printf("Simple payback:      %s years\n", est.Financials.PaybackYears.Decimal.StringFixed(1))
	} else {
		w.printf("Simple payback:      n/a (no positive savings)\n")
	}
	w.printf("Projection (%d years):\n", est.Assumptions.HorizonYears)
	w.printf("  Total savings:     $%s\n", est.Projection.TotalSavings.StringFixed(2))
	if est.Projection.BreakEvenYear > 0 {
		w.printf("  Break even:        year %d\n", est.Projection.BreakEvenYear)
	} else {
		w.printf("  Break even:        beyond %d-year horizon\n", est.Assumptions.HorizonYears)
	}
	return w.err
}

// errWriter collects the first write error so the report body stays free of
// per-line error handling.
type errWriter struct {
	out io.Writer
	err error
}

func (w *errWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
