package model

// ExpenseYear is one row of the domestic-currency expense series. Education
// and Travel include the converted value of their foreign-denominated
// portions at that year's cross rate.
type ExpenseYear struct {
	Year         int     `json:"year"`
	Housing      float64 `json:"housing"`
	Education    float64 `json:"education"`
	Health       float64 `json:"health"`
	Vehicles     float64 `json:"vehicles"`
	Lifestyle    float64 `json:"lifestyle"`
	Travel       float64 `json:"travel"`
	SecondHome   float64 `json:"second_home"`
	Luxury       float64 `json:"luxury"`
	Philanthropy float64 `json:"philanthropy"`
	Total        float64 `json:"total"`
}

// ForeignExpenseYear tracks the two categories that are foreign-denominated
// at origin, in their native currency.
type ForeignExpenseYear struct {
	Year      int     `json:"year"`
	Education float64 `json:"education"`
	Travel    float64 `json:"travel"`
	Total     float64 `json:"total"`
}

// IncomeYear is one row of the income series, all values expressed in
// domestic currency (foreign legs converted at that year's cross rate).
type IncomeYear struct {
	Year              int     `json:"year"`
	Salary            float64 `json:"salary"`
	RentDomestic      float64 `json:"rent_domestic"`
	RentForeign       float64 `json:"rent_foreign"`
	DividendsDomestic float64 `json:"dividends_domestic"`
	DividendsForeign  float64 `json:"dividends_foreign"`
	Total             float64 `json:"total"`
}

// PatrimonyYear decomposes net worth for one year. Total is always
// Reserve + Endowment + Aspirational.
type PatrimonyYear struct {
	Year         int     `json:"year"`
	Reserve      float64 `json:"reserve"`
	Endowment    float64 `json:"endowment"`
	Aspirational float64 `json:"aspirational"`
	Total        float64 `json:"total"`
}

// PercentilePaths carries year-indexed P10/P50/P90 value paths from a
// Monte Carlo run, plus an optional deterministic benchmark curve.
type PercentilePaths struct {
	Years     []int     `json:"years"`
	P10       []float64 `json:"p10"`
	P50       []float64 `json:"p50"`
	P90       []float64 `json:"p90"`
	Benchmark []float64 `json:"benchmark,omitempty"`
}

// TerminalPercentiles is the single-shot variant: percentiles of the value
// at the end of the horizon only.
type TerminalPercentiles struct {
	P10 float64 `json:"p10"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
}
