// Package allocator runs the year-by-year decomposition of net worth into
// the reserve, endowment and aspirational buckets. The reserve requirement
// rule lives here and is the single source of truth for both the one-shot
// initial reserve and the yearly rebalance target.
package allocator

import (
	"math"

	"patrimony-engine/internal/model"
	"patrimony-engine/internal/portfolio"
)

// DefaultReserveGrowthPct is the blended annual growth of the reserve
// bucket: 70% domestic assets at 15% plus 30% foreign assets at 4.5%.
const DefaultReserveGrowthPct = 11.85

// reserveFloorShare is the floor applied when near-term obligations are
// small relative to the first-year expense: 10% of investible capital.
const reserveFloorShare = 0.10

// lookaheadYears is the obligation window the reserve must cover.
const lookaheadYears = 4

// RequiredReserve sizes the liquidity reserve for a given year: the sum of
// the next four years of expenses minus that year's income, or 10% of the
// investible capital when that difference falls below the year's expense
// alone. Never negative.
func RequiredReserve(expenseTotals, incomeTotals []float64, year int, investible float64) float64 {
	var sum float64
	for i := year; i < year+lookaheadYears && i < len(expenseTotals); i++ {
		sum += expenseTotals[i]
	}
	var income float64
	if year < len(incomeTotals) {
		income = incomeTotals[year]
	}
	var first float64
	if year < len(expenseTotals) {
		first = expenseTotals[year]
	}
	req := sum - income
	if req < first {
		req = investible * reserveFloorShare
	}
	if req < 0 {
		req = 0
	}
	return req
}

// Input carries everything one allocation run depends on. ExpenseTotals and
// IncomeTotals come from the projector; AspirationalSeries is exogenous and
// only copied, never mutated.
type Input struct {
	InitialCapital        float64
	AspirationalSeries    []float64
	AspirationalInitial   float64
	AspirationalGrowthPct float64
	ReserveGrowthPct      float64
	Horizon               int
	Profile               portfolio.Profile
	ExpenseTotals         []float64
	IncomeTotals          []float64
	NetCash               []float64
	Macro                 model.MacroAssumptions
}

// Allocate runs the rebalancing recurrence over the horizon. Per year it
// records the buckets, advances the aspirational series, matures reserve
// and endowment, re-evaluates the reserve requirement and moves the
// difference between the buckets. Transfers conserve reserve+endowment;
// only net cash flow and market return change their combined value.
func Allocate(in Input) []model.PatrimonyYear {
	if in.Horizon <= 0 {
		return nil
	}

	reserveFactor := 1 + in.ReserveGrowthPct/100
	aspFactor := 1 + in.AspirationalGrowthPct/100
	blended := in.Profile.BlendedReturn()

	netCash := make([]float64, in.Horizon)
	copy(netCash, in.NetCash)

	reserve := RequiredReserve(in.ExpenseTotals, in.IncomeTotals, 0, in.InitialCapital)
	endowment := in.InitialCapital - reserve
	if endowment < 0 {
		endowment = 0
	}

	// The endowment is split 70/30 at inception; the foreign sleeve is
	// re-expressed through the cumulative cross-rate ratio for display.
	fxRatio := 1.0
	if d := 1 + in.Macro.InflationForeign/100; d != 0 {
		fxRatio = (1 + in.Macro.InflationDomestic/100) / d
	}

	// Without a series the bucket seeds from the initial value and
	// compounds at the supplied growth rate.
	aspirational := in.AspirationalInitial
	if len(in.AspirationalSeries) > 0 {
		aspirational = in.AspirationalSeries[0]
	}

	out := make([]model.PatrimonyYear, 0, in.Horizon)
	for i := 0; i < in.Horizon; i++ {
		current := aspirational
		if i < len(in.AspirationalSeries) {
			current = in.AspirationalSeries[i]
		}

		fxDisplay := portfolio.DomesticWeight + portfolio.ForeignWeight*math.Pow(fxRatio, float64(i))
		shownEndowment := endowment * fxDisplay
		out = append(out, model.PatrimonyYear{
			Year:         i + 1,
			Reserve:      reserve,
			Endowment:    shownEndowment,
			Aspirational: current,
			Total:        reserve + shownEndowment + current,
		})

		// Advance aspirational: next series entry when present, otherwise
		// compound at the supplied growth rate.
		if i+1 < len(in.AspirationalSeries) {
			aspirational = in.AspirationalSeries[i+1]
		} else {
			aspirational = current * aspFactor
		}

		maturedReserve := reserve * reserveFactor
		maturedEndowment := (endowment + netCash[i]) * (1 + blended)
		investible := maturedReserve + maturedEndowment

		required := RequiredReserve(in.ExpenseTotals, in.IncomeTotals, i, investible)

		// Rebalance: the shortfall or surplus moves between the buckets.
		endowment = maturedEndowment - (required - maturedReserve)
		if endowment < 0 {
			endowment = 0
		}
		reserve = required
	}
	return out
}
