package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solarsizer/solarsizer/pkg/types"
)

func TestEstimateArray(t *testing.T) {
	systemKW := 30.0 / (4.5 * 0.78) // ~8.547 kW, ~21.37 panels at 400 W

	t.Run("nearest rounding", func(t *testing.T) {
		arr := EstimateArray(systemKW, 400, 1.7, types.RoundNearest, true)
		assert.Equal(t, 21, arr.Panels)
		assert.True(t, arr.AreaComputed)
		assert.InDelta(t, 21*1.7, arr.AreaM2, 1e-9)
	})

	t.Run("round up", func(t *testing.T) {
		arr := EstimateArray(systemKW, 400, 1.7, types.RoundUp, true)
		assert.Equal(t, 22, arr.Panels)
		assert.InDelta(t, 22*1.7, arr.AreaM2, 1e-9)
	})

	t.Run("ties round away from zero", func(t *testing.T) {
		// 21.5 kW at 1000 W/panel is exactly 21.5 panels
		arr := EstimateArray(21.5, 1000, 1.0, types.RoundNearest, true)
		assert.Equal(t, 22, arr.Panels)
	})

	t.Run("area suppressed", func(t *testing.T) {
		arr := EstimateArray(systemKW, 400, 1.7, types.RoundNearest, false)
		assert.Equal(t, 21, arr.Panels)
		assert.False(t, arr.AreaComputed)
		assert.Zero(t, arr.AreaM2)
	})

	t.Run("zero capacity", func(t *testing.T) {
		arr := EstimateArray(0, 400, 1.7, types.RoundNearest, true)
		assert.Equal(t, 0, arr.Panels)
		assert.Zero(t, arr.AreaM2)
	})
}
