package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"patrimony-engine/internal/allocator"
	"patrimony-engine/internal/aspirational"
	"patrimony-engine/internal/model"
	"patrimony-engine/internal/montecarlo"
	"patrimony-engine/internal/portfolio"
	"patrimony-engine/internal/premises"
	"patrimony-engine/internal/projector"
	"patrimony-engine/internal/riskscore"
	"patrimony-engine/internal/salary"
)

// Deterministic benchmark rates reported next to the simulated paths.
const (
	benchmarkRateDomestic = 0.15
	benchmarkRateForeign  = 0.04
)

// Engine wires the stateless calculation stages to the loaded premises and
// the salary service client. Safe for concurrent use.
type Engine struct {
	Premises *premises.Premises
	Salary   *salary.Client
}

func New(prem *premises.Premises, sal *salary.Client) *Engine {
	return &Engine{Premises: prem, Salary: sal}
}

// Process runs one full projection: cost model, income model, aspirational
// seeding, bucket allocation, portfolio recommendation and Monte Carlo.
// A critical message aborts after the stage that raised it and flips the
// outcome to FAILURE; warnings are collected and do not stop the run.
func (e *Engine) Process(req *model.ProjectionRequest) *model.ProjectionResponse {
	start := time.Now()

	var messages []model.Message
	critical := false

	addCritical := func(code, text string) {
		messages = append(messages, model.Message{
			ID:      len(messages),
			Level:   model.LevelCritical,
			Code:    code,
			Message: text,
		})
		critical = true
	}

	resp := &model.ProjectionResponse{}

	if req.Macro.HorizonYears <= 0 {
		addCritical("INVALID_HORIZON", fmt.Sprintf("Horizon must be positive, got %d", req.Macro.HorizonYears))
	}
	if !critical && req.InitialCapital < 0 {
		addCritical("INVALID_CAPITAL", "Initial capital cannot be negative")
	}

	income := req.Income
	if !critical && req.SalaryLookup != nil {
		est, err := e.Salary.Estimate(req.SalaryLookup.Role, req.SalaryLookup.Sector, req.SalaryLookup.Company)
		if err != nil {
			addCritical("SALARY_ESTIMATE_UNAVAILABLE",
				fmt.Sprintf("Could not estimate salary for role %q", req.SalaryLookup.Role))
		} else {
			income.AnnualSalary = est
		}
	}

	if !critical {
		projection, projMsgs := projector.Project(req.Household, income, req.Macro, req.InitialCapital, e.Premises, req.Scales)
		for _, m := range projMsgs {
			m.ID = len(messages)
			messages = append(messages, m)
			if m.Level == model.LevelCritical {
				critical = true
			}
		}

		if !critical {
			horizon := req.Macro.HorizonYears
			expenseTotals := make([]float64, horizon)
			incomeTotals := make([]float64, horizon)
			netCash := make([]float64, horizon)
			for i := 0; i < horizon; i++ {
				expenseTotals[i] = projection.Expenses[i].Total
				incomeTotals[i] = projection.Incomes[i].Total
				netCash[i] = incomeTotals[i] - expenseTotals[i]
			}

			asp := aspirational.Series{
				Values:    req.AspirationalSeries,
				GrowthPct: req.AspirationalGrowthPct,
			}
			if len(asp.Values) > 0 {
				asp.Initial = asp.Values[0]
			} else {
				asp = aspirational.Build(income, req.Macro)
			}

			reserveGrowth := allocator.DefaultReserveGrowthPct
			if req.ReserveGrowthPct != nil {
				reserveGrowth = *req.ReserveGrowthPct
			}

			profile := portfolio.ByName(req.RiskProfile)
			patrimony := allocator.Allocate(allocator.Input{
				InitialCapital:        req.InitialCapital,
				AspirationalSeries:    asp.Values,
				AspirationalInitial:   asp.Initial,
				AspirationalGrowthPct: asp.GrowthPct,
				ReserveGrowthPct:      reserveGrowth,
				Horizon:               horizon,
				Profile:               profile,
				ExpenseTotals:         expenseTotals,
				IncomeTotals:          incomeTotals,
				NetCash:               netCash,
				Macro:                 req.Macro,
			})

			resp.Expenses = projection.Expenses
			resp.ForeignExpenses = projection.ForeignExpenses
			resp.Incomes = projection.Incomes
			resp.Patrimony = patrimony
			resp.InitialReserve = projection.InitialReserve
			resp.Aspirational = &model.AspirationalSummary{
				Initial:   asp.Initial,
				GrowthPct: asp.GrowthPct,
				Series:    asp.Values,
			}

			endowment := req.InitialCapital - projection.InitialReserve
			if endowment < 0 {
				endowment = 0
			}
			resp.Portfolio = recommend(profile, endowment, req.Macro.InitialCrossRate)
			resp.Simulation = simulate(profile, resp.Portfolio, horizon, req.Simulation)
		}
	}

	if messages == nil {
		messages = []model.Message{}
	}
	resp.Messages = messages

	outcome := model.OutcomeSuccess
	if critical {
		outcome = model.OutcomeFailure
	}
	elapsed := time.Since(start)
	now := time.Now().UTC()
	resp.Metadata = model.Metadata{
		CalculationID:        uuid.New().String(),
		TenantID:             req.TenantID,
		CalculationStartedAt: now.Add(-elapsed).Format(time.RFC3339),
		CalculationEndedAt:   now.Format(time.RFC3339),
		DurationMs:           elapsed.Milliseconds(),
		Outcome:              outcome,
	}
	return resp
}

// recommend splits the initial endowment 70/30 across the profile segments.
// Domestic lines are valued in domestic currency, foreign lines in foreign
// currency at the initial cross rate.
func recommend(p portfolio.Profile, endowment, crossRate float64) *model.PortfolioRecommendation {
	domesticValue := portfolio.DomesticWeight * endowment
	foreignValue := portfolio.ForeignWeight * endowment
	if crossRate > 0 {
		foreignValue /= crossRate
	}

	lines := func(seg portfolio.Segment, total float64) []model.AllocationLine {
		out := make([]model.AllocationLine, 0, len(seg.Classes))
		for _, cw := range seg.Classes {
			out = append(out, model.AllocationLine{
				Class:     cw.Class,
				WeightPct: cw.WeightPct,
				Value:     total * cw.WeightPct / 100,
			})
		}
		return out
	}

	return &model.PortfolioRecommendation{
		Profile:        p.Name,
		Domestic:       lines(p.Domestic, domesticValue),
		Foreign:        lines(p.Foreign, foreignValue),
		DomesticReturn: p.Domestic.ExpectedReturn,
		DomesticVol:    p.Domestic.Volatility,
		ForeignReturn:  p.Foreign.ExpectedReturn,
		ForeignVol:     p.Foreign.Volatility,
		BlendedReturn:  p.BlendedReturn(),
		DomesticValue:  domesticValue,
		ForeignValue:   foreignValue,
	}
}

func simulate(p portfolio.Profile, rec *model.PortfolioRecommendation, horizon int, opts model.SimulationOptions) *model.SimulationBlock {
	block := &model.SimulationBlock{}

	// Offset foreign seeds so both runs never share a stream when the
	// caller pins one.
	foreignSeed := opts.Seed
	if foreignSeed != 0 {
		foreignSeed++
	}

	block.Domestic = montecarlo.Simulate(montecarlo.Config{
		Start: rec.DomesticValue,
		Years: horizon,
		Mu:    p.Domestic.ExpectedReturn,
		Sigma: p.Domestic.Volatility,
		Paths: opts.Paths,
		Seed:  opts.Seed,
	})
	if block.Domestic != nil {
		block.Domestic.Benchmark = montecarlo.BenchmarkPath(rec.DomesticValue, benchmarkRateDomestic, horizon)
	}

	block.Foreign = montecarlo.Simulate(montecarlo.Config{
		Start: rec.ForeignValue,
		Years: horizon,
		Mu:    p.Foreign.ExpectedReturn,
		Sigma: p.Foreign.Volatility,
		Paths: opts.Paths,
		Seed:  foreignSeed,
	})
	if block.Foreign != nil {
		block.Foreign.Benchmark = montecarlo.BenchmarkPath(rec.ForeignValue, benchmarkRateForeign, horizon)
	}

	block.DomesticTerminal = montecarlo.SimulateTerminal(montecarlo.Config{
		Start: rec.DomesticValue,
		Years: horizon,
		Mu:    p.Domestic.ExpectedReturn,
		Sigma: p.Domestic.Volatility,
		Paths: opts.Paths,
		Seed:  opts.Seed,
	})
	block.ForeignTerminal = montecarlo.SimulateTerminal(montecarlo.Config{
		Start: rec.ForeignValue,
		Years: horizon,
		Mu:    p.Foreign.ExpectedReturn,
		Sigma: p.Foreign.Volatility,
		Paths: opts.Paths,
		Seed:  foreignSeed,
	})

	if block.Domestic == nil && block.Foreign == nil {
		return nil
	}
	return block
}

// Score replays a full risk questionnaire in one shot: three ladder answers
// followed by the three refining answers.
func Score(req *model.RiskScoreRequest) (*model.RiskScoreResponse, error) {
	a := riskscore.New()
	questions := make([]model.RiskQuestion, 0, len(req.LadderAnswers))
	for _, yes := range req.LadderAnswers {
		loss, gain := a.Question()
		questions = append(questions, model.RiskQuestion{LossPct: loss, GainPct: gain})
		if err := a.Answer(yes); err != nil {
			return nil, err
		}
	}
	ladderValue := a.Current
	score, err := a.Finish(
		riskscore.LossReaction(req.LossReaction),
		riskscore.Horizon(req.Horizon),
		riskscore.Objective(req.Objective),
	)
	if err != nil {
		return nil, err
	}
	return &model.RiskScoreResponse{
		RiskNumber:  score,
		LadderValue: ladderValue,
		Profile:     a.Profile,
		Questions:   questions,
	}, nil
}
