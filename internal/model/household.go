package model

// Dependent is one child of the household. School is the name of a school
// defined in the premises tables; an empty string means not enrolled.
type Dependent struct {
	Age           int    `json:"age"`
	School        string `json:"school,omitempty"`
	StudiesAbroad bool   `json:"studies_abroad"`
}

// HouseholdProfile carries the demographic and lifestyle inputs for one
// projection run. It is assembled once per request and never mutated by
// the engine.
type HouseholdProfile struct {
	ClientAge          int         `json:"client_age"`
	SpouseAge          int         `json:"spouse_age"`
	NoSpouse           bool        `json:"no_spouse"`
	Dependents         []Dependent `json:"dependents,omitempty"`
	Neighborhood       string      `json:"neighborhood"`
	ResidenceSqm       float64     `json:"residence_sqm"`
	Vehicles           int         `json:"vehicles"`
	LifestyleTier      int         `json:"lifestyle_tier"`
	TripsPerYear       int         `json:"trips_per_year"`
	ExtraStaff         int         `json:"extra_staff"`
	LuxuryMonthly      float64     `json:"luxury_monthly"`
	SecondHomeMonthly  float64     `json:"second_home_monthly"`
	PhilanthropyAnnual float64     `json:"philanthropy_annual"`
}

// Occupants counts the people living in the primary residence.
func (h *HouseholdProfile) Occupants() int {
	n := 1 + len(h.Dependents)
	if !h.NoSpouse {
		n++
	}
	return n
}

// IlliquidAsset is one entry of the illiquid holdings list, split by the
// currency its value is denominated in. Growth rates are annual percentages.
type IlliquidAsset struct {
	ValueDomestic  float64 `json:"value_domestic"`
	GrowthDomestic float64 `json:"growth_domestic_pct"`
	ValueForeign   float64 `json:"value_foreign"`
	GrowthForeign  float64 `json:"growth_foreign_pct"`
}

// IncomeAssumptions holds the income side of the projection. Monthly rental
// amounts and annual dividend amounts are in their native currency; growth
// rates are annual percentages.
type IncomeAssumptions struct {
	RentMonthlyDomestic    float64         `json:"rent_monthly_domestic"`
	RentGrowthDomestic     float64         `json:"rent_growth_domestic_pct"`
	RentMonthlyForeign     float64         `json:"rent_monthly_foreign"`
	RentGrowthForeign      float64         `json:"rent_growth_foreign_pct"`
	DividendsDomestic      float64         `json:"dividends_domestic"`
	DividendGrowthDomestic float64         `json:"dividend_growth_domestic_pct"`
	DividendsForeign       float64         `json:"dividends_foreign"`
	DividendGrowthForeign  float64         `json:"dividend_growth_foreign_pct"`
	AnnualSalary           float64         `json:"annual_salary"`
	RetirementAge          int             `json:"retirement_age"`
	IlliquidAssets         []IlliquidAsset `json:"illiquid_assets,omitempty"`
}

// MacroAssumptions fixes the macroeconomic backdrop for a run. Inflation
// rates are annual percentages. The cross rate for year t is always
// InitialCrossRate * ((1+infl_dom)/(1+infl_for))^t.
type MacroAssumptions struct {
	InflationDomestic float64 `json:"inflation_domestic_pct"`
	InflationForeign  float64 `json:"inflation_foreign_pct"`
	InitialCrossRate  float64 `json:"initial_cross_rate"`
	HorizonYears      int     `json:"horizon_years"`
}
