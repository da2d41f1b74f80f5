package model

// SalaryLookup asks the engine to resolve the annual salary through the
// external estimation service instead of taking it from the request.
type SalaryLookup struct {
	Role    string `json:"role"`
	Sector  string `json:"sector"`
	Company string `json:"company"`
}

// SimulationOptions tunes the Monte Carlo stage. A zero Seed means the run
// is not reproducible; callers wanting stable output must pass one.
type SimulationOptions struct {
	Paths int    `json:"paths,omitempty"`
	Seed  uint64 `json:"seed,omitempty"`
}

type ProjectionRequest struct {
	TenantID       string            `json:"tenant_id,omitempty"`
	Household      HouseholdProfile  `json:"household"`
	Income         IncomeAssumptions `json:"income"`
	Macro          MacroAssumptions  `json:"macro"`
	InitialCapital float64           `json:"initial_capital"`

	// RiskProfile selects the portfolio by name; empty defaults to moderate.
	RiskProfile string `json:"risk_profile,omitempty"`

	// Scales are optional per-category multipliers applied after the cost
	// model (sensitivity adjustment). Missing keys default to 1.
	Scales map[string]float64 `json:"scales,omitempty"`

	// AspirationalSeries overrides the engine-built series when supplied.
	// AspirationalGrowthPct extends it past its last entry.
	AspirationalSeries    []float64 `json:"aspirational_series,omitempty"`
	AspirationalGrowthPct float64   `json:"aspirational_growth_pct,omitempty"`

	// ReserveGrowthPct is the blended annual growth of the reserve bucket.
	// Nil selects the default 70/30 domestic/foreign blend.
	ReserveGrowthPct *float64 `json:"reserve_growth_pct,omitempty"`

	SalaryLookup *SalaryLookup     `json:"salary_lookup,omitempty"`
	Simulation   SimulationOptions `json:"simulation"`
}

// RiskScoreRequest replays a full questionnaire in one call: exactly three
// ladder answers followed by the three refining answers.
type RiskScoreRequest struct {
	LadderAnswers []bool `json:"ladder_answers"`
	LossReaction  string `json:"loss_reaction"`
	Horizon       string `json:"horizon"`
	Objective     string `json:"objective"`
}
