// Package aspirational seeds the illiquid bucket from income streams and
// listed illiquid assets: rental streams and dividend participations are
// capitalized as growing perpetuities at fixed required returns, and each
// component compounds at its own growth rate to form the year series the
// allocator consumes.
package aspirational

import (
	"math"

	"patrimony-engine/internal/model"
)

// Required returns used to capitalize each stream. A growth rate at or
// above its cap rate values the component at zero instead of dividing by a
// non-positive denominator.
const (
	rentCapRateDomestic     = 0.15
	rentCapRateForeign      = 0.07
	dividendCapRateDomestic = 0.19
	dividendCapRateForeign  = 0.11
)

type Series struct {
	Values    []float64
	Initial   float64
	GrowthPct float64
}

// capitalize values an annual stream as a growing perpetuity, zero when the
// denominator is non-positive.
func capitalize(annual, capRate, growth float64) float64 {
	if capRate-growth <= 0 {
		return 0
	}
	return annual / (capRate - growth)
}

// Build derives the aspirational series over the horizon. Foreign legs are
// converted at the initial cross rate; the reported growth is the
// value-weighted average of the component growth rates.
func Build(income model.IncomeAssumptions, macro model.MacroAssumptions) Series {
	horizon := macro.HorizonYears
	if horizon <= 0 {
		return Series{}
	}
	rate0 := macro.InitialCrossRate

	gRentDom := income.RentGrowthDomestic / 100
	gRentFor := income.RentGrowthForeign / 100
	gDivDom := income.DividendGrowthDomestic / 100
	gDivFor := income.DividendGrowthForeign / 100

	rentalDom := capitalize(income.RentMonthlyDomestic*12, rentCapRateDomestic, gRentDom)
	rentalFor := capitalize(income.RentMonthlyForeign*12, rentCapRateForeign, gRentFor) * rate0
	partDom := capitalize(income.DividendsDomestic, dividendCapRateDomestic, gDivDom)
	partFor := capitalize(income.DividendsForeign, dividendCapRateForeign, gDivFor) * rate0

	values := make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		t := float64(i)
		total := rentalDom*math.Pow(1+gRentDom, t) +
			rentalFor*math.Pow(1+gRentFor, t) +
			partDom*math.Pow(1+gDivDom, t) +
			partFor*math.Pow(1+gDivFor, t)
		for _, a := range income.IlliquidAssets {
			total += a.ValueDomestic * math.Pow(1+a.GrowthDomestic/100, t)
			total += a.ValueForeign * rate0 * math.Pow(1+a.GrowthForeign/100, t)
		}
		values[i] = total
	}

	initial := values[0]

	// Value-weighted growth across components.
	var weightedGrowth float64
	weightedGrowth += rentalDom * gRentDom
	weightedGrowth += rentalFor * gRentFor
	participations := partDom + partFor
	if participations > 0 {
		gPart := (partDom*gDivDom + partFor*gDivFor) / participations
		weightedGrowth += participations * gPart
	}
	for _, a := range income.IlliquidAssets {
		v := a.ValueDomestic + a.ValueForeign*rate0
		if v > 0 {
			weightedGrowth += v * (a.GrowthDomestic / 100)
		}
	}

	growthPct := 0.0
	if initial > 0 {
		growthPct = weightedGrowth / initial * 100
	}
	return Series{Values: values, Initial: initial, GrowthPct: growthPct}
}
