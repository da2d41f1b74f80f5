package model

type Metadata struct {
	CalculationID        string `json:"calculation_id"`
	TenantID             string `json:"tenant_id,omitempty"`
	CalculationStartedAt string `json:"calculation_started_at"`
	CalculationEndedAt   string `json:"calculation_ended_at"`
	DurationMs           int64  `json:"duration_ms"`
	Outcome              string `json:"outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// AllocationLine is one asset class of a portfolio segment with its weight
// and the absolute amount it receives from the endowment.
type AllocationLine struct {
	Class     string  `json:"class"`
	WeightPct float64 `json:"weight_pct"`
	Value     float64 `json:"value"`
}

// PortfolioRecommendation presents the selected profile with the endowment
// split across its domestic and foreign segments. Domestic values are in
// domestic currency; foreign values in foreign currency.
type PortfolioRecommendation struct {
	Profile        string           `json:"profile"`
	Domestic       []AllocationLine `json:"domestic"`
	Foreign        []AllocationLine `json:"foreign"`
	DomesticReturn float64          `json:"domestic_expected_return"`
	DomesticVol    float64          `json:"domestic_volatility"`
	ForeignReturn  float64          `json:"foreign_expected_return"`
	ForeignVol     float64          `json:"foreign_volatility"`
	BlendedReturn  float64          `json:"blended_expected_return"`
	DomesticValue  float64          `json:"domestic_value"`
	ForeignValue   float64          `json:"foreign_value"`
}

// SimulationBlock groups the stochastic outputs for the endowment segments.
type SimulationBlock struct {
	Domestic         *PercentilePaths     `json:"domestic,omitempty"`
	Foreign          *PercentilePaths     `json:"foreign,omitempty"`
	DomesticTerminal *TerminalPercentiles `json:"domestic_terminal,omitempty"`
	ForeignTerminal  *TerminalPercentiles `json:"foreign_terminal,omitempty"`
}

// AspirationalSummary reports how the exogenous bucket was seeded.
type AspirationalSummary struct {
	Initial   float64   `json:"initial"`
	GrowthPct float64   `json:"growth_pct"`
	Series    []float64 `json:"series"`
}

type ProjectionResponse struct {
	Metadata        Metadata                 `json:"calculation_metadata"`
	Messages        []Message                `json:"messages"`
	Expenses        []ExpenseYear            `json:"expenses,omitempty"`
	ForeignExpenses []ForeignExpenseYear     `json:"foreign_expenses,omitempty"`
	Incomes         []IncomeYear             `json:"incomes,omitempty"`
	Patrimony       []PatrimonyYear          `json:"patrimony,omitempty"`
	InitialReserve  float64                  `json:"initial_reserve"`
	Aspirational    *AspirationalSummary     `json:"aspirational,omitempty"`
	Portfolio       *PortfolioRecommendation `json:"portfolio,omitempty"`
	Simulation      *SimulationBlock         `json:"simulation,omitempty"`
}

type RiskScoreResponse struct {
	RiskNumber  int            `json:"risk_number"`
	LadderValue int            `json:"ladder_value"`
	Profile     string         `json:"profile"`
	Questions   []RiskQuestion `json:"questions"`
}

// RiskQuestion is the (loss, gain) pair a ladder step was asked with.
type RiskQuestion struct {
	LossPct float64 `json:"loss_pct"`
	GainPct float64 `json:"gain_pct"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
