package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentWeightsSumTo100(t *testing.T) {
	for _, name := range Names() {
		p := ByName(name)
		for _, seg := range []struct {
			label string
			seg   Segment
		}{
			{"domestic", p.Domestic},
			{"foreign", p.Foreign},
		} {
			var sum float64
			for _, cw := range seg.seg.Classes {
				sum += cw.WeightPct
			}
			assert.InDelta(t, 100.0, sum, 1e-9, "%s %s", name, seg.label)
		}
	}
}

func TestByNameDefaultsToModerate(t *testing.T) {
	assert.Equal(t, Moderate, ByName("").Name)
	assert.Equal(t, Moderate, ByName("balanced").Name)
	assert.Equal(t, Aggressive, ByName(Aggressive).Name)
}

func TestForRiskNumberBoundaries(t *testing.T) {
	assert.Equal(t, Conservative, ForRiskNumber(1).Name)
	assert.Equal(t, Conservative, ForRiskNumber(30).Name)
	assert.Equal(t, Moderate, ForRiskNumber(31).Name)
	assert.Equal(t, Moderate, ForRiskNumber(60).Name)
	assert.Equal(t, Aggressive, ForRiskNumber(61).Name)
	assert.Equal(t, Aggressive, ForRiskNumber(99).Name)
}

func TestBlendedReturn(t *testing.T) {
	p := Profile{
		Domestic: Segment{ExpectedReturn: 0.15, Volatility: 0.04},
		Foreign:  Segment{ExpectedReturn: 0.045, Volatility: 0.03},
	}
	assert.InDelta(t, 0.1185, p.BlendedReturn(), 1e-12)

	// Uncorrelated combination of the sleeve volatilities.
	assert.InDelta(t, 0.029411, p.BlendedVol(), 1e-6)
}

func TestProfileReturnsOrdered(t *testing.T) {
	c, m, a := ByName(Conservative), ByName(Moderate), ByName(Aggressive)
	assert.Less(t, c.Domestic.ExpectedReturn, m.Domestic.ExpectedReturn)
	assert.Less(t, m.Domestic.ExpectedReturn, a.Domestic.ExpectedReturn)
	assert.Less(t, c.Domestic.Volatility, a.Domestic.Volatility)
}
