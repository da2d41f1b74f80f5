package riskscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimony-engine/internal/portfolio"
)

func TestLadderNarrowsOnYes(t *testing.T) {
	a := New()
	assert.Equal(t, 50, a.Current)

	require.NoError(t, a.Answer(true))
	assert.Equal(t, 75, a.Current)
	require.NoError(t, a.Answer(true))
	assert.Equal(t, 87, a.Current)
	require.NoError(t, a.Answer(true))
	assert.Equal(t, 93, a.Current)

	assert.Equal(t, PhaseRefining, a.Phase())
}

func TestLadderNarrowsOnNo(t *testing.T) {
	a := New()

	require.NoError(t, a.Answer(false))
	assert.Equal(t, 25, a.Current)
	require.NoError(t, a.Answer(false))
	assert.Equal(t, 13, a.Current)
	require.NoError(t, a.Answer(false))
	assert.Equal(t, 7, a.Current)

	assert.Equal(t, PhaseRefining, a.Phase())
}

func TestQuestionInterpolation(t *testing.T) {
	loss, gain := QuestionFor(1)
	assert.Equal(t, 2.0, loss)
	assert.Equal(t, 4.0, gain)

	loss, gain = QuestionFor(99)
	assert.Equal(t, 30.0, loss)
	assert.Equal(t, 40.0, gain)

	loss, gain = QuestionFor(50)
	assert.Equal(t, 16.0, loss)
	assert.Equal(t, 22.0, gain)
}

func TestFinishAppliesModifiers(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Answer(true))
	}

	score, err := a.Finish(Hold, ThreeTo5Years, BalancedGrowth)
	require.NoError(t, err)
	assert.Equal(t, 96, score)
	assert.Equal(t, portfolio.Aggressive, a.Profile)
	assert.Equal(t, PhaseDone, a.Phase())

	// Finishing again is idempotent.
	again, err := a.Finish(SellAll, Under1Year, PreserveCapital)
	require.NoError(t, err)
	assert.Equal(t, 96, again)
}

func TestFinishClampsToRange(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Answer(true))
	}
	score, err := a.Finish(BuyMore, Over5Years, CapitalGrowth)
	require.NoError(t, err)
	assert.Equal(t, 99, score)

	a = New()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Answer(false))
	}
	score, err = a.Finish(SellAll, Under1Year, PreserveCapital)
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, portfolio.Conservative, a.Profile)
}

func TestPhaseErrors(t *testing.T) {
	a := New()

	_, err := a.Finish(Hold, ThreeTo5Years, BalancedGrowth)
	assert.ErrorIs(t, err, ErrNotRefining)

	for i := 0; i < 3; i++ {
		require.NoError(t, a.Answer(true))
	}
	assert.ErrorIs(t, a.Answer(true), ErrNotAsking)
}

func TestFinishRejectsUnknownAnswers(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Answer(false))
	}

	_, err := a.Finish("panic", ThreeTo5Years, BalancedGrowth)
	assert.ErrorIs(t, err, ErrUnknownAnswer)

	_, err = a.Finish(Hold, "tomorrow", BalancedGrowth)
	assert.ErrorIs(t, err, ErrUnknownAnswer)

	_, err = a.Finish(Hold, ThreeTo5Years, "moon")
	assert.ErrorIs(t, err, ErrUnknownAnswer)
}

func TestReset(t *testing.T) {
	a := New()
	require.NoError(t, a.Answer(true))
	a.Reset()

	assert.Equal(t, 50, a.Current)
	assert.Equal(t, PhaseAsking, a.Phase())
	assert.Empty(t, a.Answers)
}
