// Package riskscore implements the adaptive questionnaire as an explicit
// finite-state machine: three binary ladder questions narrow a 1–99 range,
// then three categorical answers apply signed modifiers and produce the
// final risk number. No host event loop is involved; the machine is a pure
// function of the answer sequence and is restartable.
package riskscore

import (
	"errors"
	"fmt"
	"math"

	"patrimony-engine/internal/portfolio"
)

type Phase int

const (
	PhaseAsking Phase = iota
	PhaseRefining
	PhaseDone
)

const (
	ladderLow   = 1
	ladderHigh  = 99
	ladderSteps = 3
	minLossPct  = 2.0
	maxLossPct  = 30.0
	minGainPct  = 4.0
	maxGainPct  = 40.0
)

var (
	ErrNotAsking     = errors.New("riskscore: ladder already complete")
	ErrNotRefining   = errors.New("riskscore: ladder answers still pending")
	ErrUnknownAnswer = errors.New("riskscore: unknown refining answer")
)

// LossReaction answers "how would you react to a one-month loss".
type LossReaction string

const (
	SellAll  LossReaction = "sell_all"
	SellSome LossReaction = "sell_some"
	Hold     LossReaction = "hold"
	BuyMore  LossReaction = "buy_more"
)

// Horizon answers "what is your investment horizon".
type Horizon string

const (
	Under1Year    Horizon = "under_1_year"
	OneTo3Years   Horizon = "1_to_3_years"
	ThreeTo5Years Horizon = "3_to_5_years"
	Over5Years    Horizon = "over_5_years"
)

// Objective answers "what is your primary objective".
type Objective string

const (
	PreserveCapital     Objective = "preserve_capital"
	InflationProtection Objective = "inflation_protection"
	BalancedGrowth      Objective = "balanced_growth"
	CapitalGrowth       Objective = "capital_growth"
)

var reactionScores = map[LossReaction]int{
	SellAll:  -3,
	SellSome: -1,
	Hold:     1,
	BuyMore:  3,
}

var horizonScores = map[Horizon]int{
	Under1Year:    -3,
	OneTo3Years:   -1,
	ThreeTo5Years: 1,
	Over5Years:    3,
}

var objectiveScores = map[Objective]int{
	PreserveCapital:     -3,
	InflationProtection: -1,
	BalancedGrowth:      1,
	CapitalGrowth:       3,
}

// Assessment is the mutable ladder state. It lives only for the duration of
// one questionnaire.
type Assessment struct {
	Low     int
	High    int
	Current int
	Step    int
	Answers []bool

	Score   int
	Profile string

	phase Phase
}

func New() *Assessment {
	a := &Assessment{}
	a.Reset()
	return a
}

// Reset restores the initial bounds so the machine can be reused.
func (a *Assessment) Reset() {
	a.Low = ladderLow
	a.High = ladderHigh
	a.Current = (ladderLow + ladderHigh + 1) / 2
	a.Step = 1
	a.Answers = a.Answers[:0]
	a.Score = 0
	a.Profile = ""
	a.phase = PhaseAsking
}

func (a *Assessment) Phase() Phase { return a.phase }

// Question returns the (loss%, gain%) pair for the current ladder value by
// linear interpolation between the fixed extremes, rounded to one decimal.
func (a *Assessment) Question() (lossPct, gainPct float64) {
	return QuestionFor(a.Current)
}

// QuestionFor maps any 1–99 ladder value to its comfort-question pair.
func QuestionFor(value int) (lossPct, gainPct float64) {
	t := float64(value-ladderLow) / float64(ladderHigh-ladderLow)
	loss := minLossPct + t*(maxLossPct-minLossPct)
	gain := minGainPct + t*(maxGainPct-minGainPct)
	return math.Round(loss*10) / 10, math.Round(gain*10) / 10
}

// Answer narrows the ladder: yes moves the lower bound up, no moves the
// upper bound down. The third answer transitions to the refining phase.
func (a *Assessment) Answer(yes bool) error {
	if a.phase != PhaseAsking {
		return ErrNotAsking
	}
	a.Answers = append(a.Answers, yes)
	if yes {
		a.Low = a.Current
		a.Current = (a.Low + a.High + 1) / 2
	} else {
		a.High = a.Current
		a.Current = (a.Low + a.High) / 2
	}
	a.Step++
	if a.Step > ladderSteps {
		a.phase = PhaseRefining
	}
	return nil
}

// Finish applies the three refining modifiers to the ladder value, clamps
// to [1, 99] and maps the score to a portfolio profile.
func (a *Assessment) Finish(reaction LossReaction, horizon Horizon, objective Objective) (int, error) {
	if a.phase == PhaseDone {
		return a.Score, nil
	}
	if a.phase != PhaseRefining {
		return 0, ErrNotRefining
	}
	r, ok := reactionScores[reaction]
	if !ok {
		return 0, fmt.Errorf("%w: loss reaction %q", ErrUnknownAnswer, reaction)
	}
	h, ok := horizonScores[horizon]
	if !ok {
		return 0, fmt.Errorf("%w: horizon %q", ErrUnknownAnswer, horizon)
	}
	o, ok := objectiveScores[objective]
	if !ok {
		return 0, fmt.Errorf("%w: objective %q", ErrUnknownAnswer, objective)
	}
	score := a.Current + r + h + o
	if score < ladderLow {
		score = ladderLow
	}
	if score > ladderHigh {
		score = ladderHigh
	}
	a.Score = score
	a.Profile = portfolio.ForRiskNumber(score).Name
	a.phase = PhaseDone
	return score, nil
}
