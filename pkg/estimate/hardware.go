package estimate

import (
	"math"

	"github.com/solarsizer/solarsizer/pkg/types"
)

// EstimateArray sizes the panel array for the given capacity. Nearest
// rounding uses math.Round, which rounds halves away from zero. The area
// pass is skipped entirely when includeArea is false.
func EstimateArray(systemKW, panelWatts, panelAreaM2 float64, mode types.RoundingMode, includeArea bool) types.Array {
	exact := systemKW * 1000 / panelWatts
	var panels float64
	if mode == types.RoundUp {
		panels = math.Ceil(exact)
	} else {
		panels = math.Round(exact)
	}
	if panels < 0 {
		panels = 0
	}

	arr := types.Array{Panels: int(panels)}
	if includeArea {
		arr.AreaM2 = panels * panelAreaM2
		arr.AreaComputed = true
	}
	return arr
}
