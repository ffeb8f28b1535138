package estimate

import (
	"fmt"

	"github.com/solarsizer/solarsizer/pkg/types"
)

// NormalizeConsumption converts whichever consumption figure was supplied
// into both daily and monthly kWh using a fixed 30-day month.
func NormalizeConsumption(dailyKWH, monthlyKWH float64) types.Consumption {
	if dailyKWH != 0 {
		return types.Consumption{DailyKWH: dailyKWH, MonthlyKWH: dailyKWH * 30}
	}
	return types.Consumption{DailyKWH: monthlyKWH / 30, MonthlyKWH: monthlyKWH}
}

// RequiredSystemKW returns the capacity in kW needed to cover the given
// daily consumption at the site's sun hours and performance ratio.
func RequiredSystemKW(dailyKWH, peakSunHours, performanceRatio float64) (float64, error) {
	if peakSunHours <= 0 {
		return 0, fmt.Errorf("peak sun hours must be positive, got %v", peakSunHours)
	}
	if performanceRatio <= 0 {
		return 0, fmt.Errorf("performance ratio must be positive, got %v", performanceRatio)
	}
	return dailyKWH / (peakSunHours * performanceRatio), nil
}
