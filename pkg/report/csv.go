package report

import (
	"encoding/csv"
	"strconv"

	"github.com/solarsizer/solarsizer/pkg/types"
)

// csvHeader is the fixed header row, one data row follows per projected year.
var csvHeader = []string{"Year", "Production_kWh", "Savings_USD"}

// renderCSV writes the projection with production truncated to a whole kWh
// and savings with exactly two decimal places.
func (r *Renderer) renderCSV(est types.Estimate) error {
	w := csv.NewWriter(r.out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, y := range est.Projection.Years {
		row := []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(int(y.ProductionKWH)),
			y.Savings.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
