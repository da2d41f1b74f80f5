// Package portfolio defines the three fixed risk-profile portfolios. The
// endowment is always split 70% domestic / 30% foreign; each segment carries
// its own strategic asset-class weights, expected annual return and annual
// volatility. Weights and return/vol pairs are inputs, never solved for.
package portfolio

import "math"

const (
	Conservative = "conservative"
	Moderate     = "moderate"
	Aggressive   = "aggressive"
)

// DomesticWeight and ForeignWeight fix the currency split of the endowment
// and of the blended reserve return.
const (
	DomesticWeight = 0.70
	ForeignWeight  = 0.30
)

type ClassWeight struct {
	Class     string  `json:"class"`
	WeightPct float64 `json:"weight_pct"`
}

// Segment is one currency sleeve of a profile. Weights sum to 100.
type Segment struct {
	Classes        []ClassWeight `json:"classes"`
	ExpectedReturn float64       `json:"expected_return"`
	Volatility     float64       `json:"volatility"`
}

type Profile struct {
	Name     string  `json:"name"`
	Domestic Segment `json:"domestic"`
	Foreign  Segment `json:"foreign"`
}

// BlendedReturn is the 70/30 weighted expected return used to grow the
// endowment in the allocator.
func (p Profile) BlendedReturn() float64 {
	return DomesticWeight*p.Domestic.ExpectedReturn + ForeignWeight*p.Foreign.ExpectedReturn
}

// BlendedVol combines the segment volatilities assuming no correlation.
func (p Profile) BlendedVol() float64 {
	d := DomesticWeight * p.Domestic.Volatility
	f := ForeignWeight * p.Foreign.Volatility
	return math.Sqrt(d*d + f*f)
}

// ByName resolves a profile, defaulting to moderate for unknown names.
func ByName(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[Moderate]
}

// ForRiskNumber maps a 1–99 risk number to a profile: ≤30 conservative,
// ≤60 moderate, else aggressive.
func ForRiskNumber(n int) Profile {
	switch {
	case n <= 30:
		return profiles[Conservative]
	case n <= 60:
		return profiles[Moderate]
	default:
		return profiles[Aggressive]
	}
}

// Names lists the defined profiles.
func Names() []string {
	return []string{Conservative, Moderate, Aggressive}
}

var profiles = map[string]Profile{
	Conservative: {
		Name: Conservative,
		Domestic: Segment{
			Classes: []ClassWeight{
				{Class: "Liquidity CDI", WeightPct: 37.50},
				{Class: "Domestic Credit Floating", WeightPct: 17.50},
				{Class: "Domestic Fixed Rate", WeightPct: 0.00},
				{Class: "Domestic Inflation Linked", WeightPct: 10.00},
				{Class: "Domestic Absolute Return", WeightPct: 15.00},
				{Class: "Domestic Equities", WeightPct: 10.00},
				{Class: "Domestic Private Equity", WeightPct: 7.50},
				{Class: "Domestic Real Estate", WeightPct: 2.50},
			},
			ExpectedReturn: 0.174,
			Volatility:     0.034,
		},
		Foreign: Segment{
			Classes: []ClassWeight{
				{Class: "Cash Equivalent", WeightPct: 31.50},
				{Class: "Intl Fixed Rate", WeightPct: 13.00},
				{Class: "Intl Inflation Linked", WeightPct: 3.25},
				{Class: "Intl Private Credit", WeightPct: 7.25},
				{Class: "Intl Absolute Return", WeightPct: 13.00},
				{Class: "Intl Equities", WeightPct: 16.25},
				{Class: "Intl Private Equity", WeightPct: 8.50},
				{Class: "Intl Real Estate", WeightPct: 4.00},
				{Class: "Commodities", WeightPct: 3.25},
			},
			ExpectedReturn: 0.068,
			Volatility:     0.039,
		},
	},
	Moderate: {
		Name: Moderate,
		Domestic: Segment{
			Classes: []ClassWeight{
				{Class: "Liquidity CDI", WeightPct: 22.50},
				{Class: "Domestic Credit Floating", WeightPct: 17.50},
				{Class: "Domestic Fixed Rate", WeightPct: 0.00},
				{Class: "Domestic Inflation Linked", WeightPct: 12.50},
				{Class: "Domestic Absolute Return", WeightPct: 12.50},
				{Class: "Domestic Equities", WeightPct: 15.00},
				{Class: "Domestic Private Equity", WeightPct: 15.00},
				{Class: "Domestic Real Estate", WeightPct: 5.00},
			},
			ExpectedReturn: 0.188,
			Volatility:     0.049,
		},
		Foreign: Segment{
			Classes: []ClassWeight{
				{Class: "Cash Equivalent", WeightPct: 12.00},
				{Class: "Intl Fixed Rate", WeightPct: 14.00},
				{Class: "Intl Inflation Linked", WeightPct: 3.50},
				{Class: "Intl Private Credit", WeightPct: 8.88},
				{Class: "Intl Absolute Return", WeightPct: 14.00},
				{Class: "Intl Equities", WeightPct: 17.50},
				{Class: "Intl Private Equity", WeightPct: 21.25},
				{Class: "Intl Real Estate", WeightPct: 5.37},
				{Class: "Commodities", WeightPct: 3.50},
			},
			ExpectedReturn: 0.081,
			Volatility:     0.045,
		},
	},
	Aggressive: {
		Name: Aggressive,
		Domestic: Segment{
			Classes: []ClassWeight{
				{Class: "Liquidity CDI", WeightPct: 10.00},
				{Class: "Domestic Credit Floating", WeightPct: 14.50},
				{Class: "Domestic Fixed Rate", WeightPct: 0.00},
				{Class: "Domestic Inflation Linked", WeightPct: 15.00},
				{Class: "Domestic Absolute Return", WeightPct: 10.00},
				{Class: "Domestic Equities", WeightPct: 22.50},
				{Class: "Domestic Private Equity", WeightPct: 21.00},
				{Class: "Domestic Real Estate", WeightPct: 7.00},
			},
			ExpectedReturn: 0.202,
			Volatility:     0.068,
		},
		Foreign: Segment{
			Classes: []ClassWeight{
				{Class: "Cash Equivalent", WeightPct: 4.25},
				{Class: "Intl Fixed Rate", WeightPct: 8.50},
				{Class: "Intl Inflation Linked", WeightPct: 2.12},
				{Class: "Intl Private Credit", WeightPct: 7.44},
				{Class: "Intl Absolute Return", WeightPct: 8.50},
				{Class: "Intl Equities", WeightPct: 25.63},
				{Class: "Intl Private Equity", WeightPct: 36.13},
				{Class: "Intl Real Estate", WeightPct: 5.30},
				{Class: "Commodities", WeightPct: 2.13},
			},
			ExpectedReturn: 0.095,
			Volatility:     0.056,
		},
	},
}
