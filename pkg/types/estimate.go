package types

import "github.com/shopspring/decimal"

// RoundingMode selects how a fractional panel count becomes a whole number
// of panels.
type RoundingMode string

const (
	// RoundNearest rounds to the nearest whole panel, halves away from zero.
	RoundNearest RoundingMode = "nearest"
	// RoundUp always rounds up to the next whole panel.
	RoundUp RoundingMode = "up"
)

// Consumption holds the normalized household consumption. Monthly figures use
// a fixed 30-day month, not calendar months.
type Consumption struct {
	DailyKWH   float64 `json:"dailyKWH"`
	MonthlyKWH float64 `json:"monthlyKWH"`
}

// Assumptions is the one-time configuration snapshot every downstream
// calculation reads from. Physical quantities are float64; currency amounts
// and rates applied to currency are decimals.
type Assumptions struct {
	PeakSunHours     float64         `json:"peakSunHours"`     // h/day of full-intensity sun
	PerformanceRatio float64         `json:"performanceRatio"` // delivered fraction after system losses
	PanelWatts       float64         `json:"panelWatts"`
	PanelAreaM2      float64         `json:"panelAreaM2"`
	CostPerWatt      decimal.Decimal `json:"costPerWatt"`
	Incentive        decimal.Decimal `json:"incentive"`
	ElectricityRate  decimal.Decimal `json:"electricityRate"` // $/kWh
	Escalation       decimal.Decimal `json:"escalation"`      // fraction/yr applied to price
	Degradation      float64         `json:"degradation"`     // fraction/yr applied to output
	HorizonYears     int             `json:"horizonYears"`
}

// SystemDesign is the required capacity and its estimated output.
type SystemDesign struct {
	SystemKW             float64 `json:"systemKW"`
	MonthlyProductionKWH float64 `json:"monthlyProductionKWH"`
	AnnualProductionKWH  float64 `json:"annualProductionKWH"`
}

// Array is the physical panel layout for a system. AreaM2 is only meaningful
// when AreaComputed is true; the area pass can be suppressed entirely.
type Array struct {
	Panels       int     `json:"panels"`
	AreaM2       float64 `json:"areaM2"`
	AreaComputed bool    `json:"areaComputed"`
}

// Financials is the installed cost and simple-payback picture.
// PaybackYears is absent (Valid=false) when first-year savings are not
// positive, it is never a sentinel value.
type Financials struct {
	BaseCost      decimal.Decimal     `json:"baseCost"`
	NetCost       decimal.Decimal     `json:"netCost"`
	AnnualSavings decimal.Decimal     `json:"annualSavings"` // first-year savings
	PaybackYears  decimal.NullDecimal `json:"paybackYears"`
}

// YearResult is a single projected year, 1-based.
type YearResult struct {
	Year          int             `json:"year"`
	ProductionKWH float64         `json:"productionKWH"`
	Savings       decimal.Decimal `json:"savings"`
}

// Projection is the multi-year savings outlook. Years always has exactly
// horizon entries. BreakEvenYear is the first year cumulative savings reach
// the net cost, or 0 when that never happens within the horizon.
type Projection struct {
	Years         []YearResult    `json:"years"`
	TotalSavings  decimal.Decimal `json:"totalSavings"`
	BreakEvenYear int             `json:"breakEvenYear"`
}

// Estimate is the full output of one estimation run.
type Estimate struct {
	Consumption Consumption  `json:"consumption"`
	Assumptions Assumptions  `json:"assumptions"`
	Design      SystemDesign `json:"design"`
	Array       Array        `json:"array"`
	Financials  Financials   `json:"financials"`
	Projection  Projection   `json:"projection"`
}
