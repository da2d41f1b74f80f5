package premises

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeRange(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi int
		ok     bool
	}{
		{"0–18", 0, 18, true},
		{"19-35", 19, 35, true},
		{"66+", 66, 200, true},
		{"40", 40, 40, true},
		{" 51 – 65 ", 51, 65, true},
		{"", 0, 0, false},
		{"abc", 0, 0, false},
		{"a–b", 0, 0, false},
	}
	for _, c := range cases {
		lo, hi, ok := parseAgeRange(c.in)
		assert.Equal(t, c.ok, ok, "range %q", c.in)
		if c.ok {
			assert.Equal(t, c.lo, lo, "range %q", c.in)
			assert.Equal(t, c.hi, hi, "range %q", c.in)
		}
	}
}

func TestHealthCostForAge(t *testing.T) {
	p := Default()

	assert.Equal(t, 15000.0, p.HealthCostForAge(0))
	assert.Equal(t, 15000.0, p.HealthCostForAge(18))
	assert.Equal(t, 20000.0, p.HealthCostForAge(19))
	assert.Equal(t, 45000.0, p.HealthCostForAge(65))
	assert.Equal(t, 60000.0, p.HealthCostForAge(66))
	assert.Equal(t, 60000.0, p.HealthCostForAge(120))
}

func TestHealthCostSkipsMalformedBands(t *testing.T) {
	p := Default()
	p.Health.Bands = []HealthBand{
		{AgeRange: "not a range", AnnualCost: 1},
		{AgeRange: "0–50", AnnualCost: 2},
	}
	assert.Equal(t, 2.0, p.HealthCostForAge(30))
	// Nothing matches age 90; the last defined bracket wins.
	assert.Equal(t, 2.0, p.HealthCostForAge(90))
}

func TestTuitionFor(t *testing.T) {
	p := Default()

	tuition, ok := p.TuitionFor("Escola Exemplo", 4)
	require.True(t, ok)
	assert.Equal(t, 50000.0, tuition)

	tuition, ok = p.TuitionFor("Escola Exemplo", 16)
	require.True(t, ok)
	assert.Equal(t, 100000.0, tuition)

	// Outside every band for that school.
	_, ok = p.TuitionFor("Colégio Bandeirantes", 5)
	assert.False(t, ok)

	_, ok = p.TuitionFor("No Such School", 10)
	assert.False(t, ok)

	_, ok = p.TuitionFor("", 10)
	assert.False(t, ok)
}

func TestLifestyleForFallsBack(t *testing.T) {
	p := Default()

	assert.Equal(t, 100000.0, p.LifestyleFor(3).Couple)
	// Unknown ordinal falls back to the moderate tier.
	assert.Equal(t, 50000.0, p.LifestyleFor(9).Couple)

	p.Lifestyle.Tiers = p.Lifestyle.Tiers[:1]
	assert.Equal(t, 20000.0, p.LifestyleFor(9).Couple)
}

func TestAllowanceMonthly(t *testing.T) {
	p := Default()

	assert.Equal(t, 0.0, p.AllowanceMonthly(9))
	assert.Equal(t, 500.0, p.AllowanceMonthly(10))
	assert.Equal(t, 1500.0, p.AllowanceMonthly(14))
	assert.Equal(t, 2500.0, p.AllowanceMonthly(21))
	assert.Equal(t, 0.0, p.AllowanceMonthly(22))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "premises.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[education.university]
domestic_annual = 72000.0
foreign_annual = 55000.0

[vehicles]
annual_upkeep = 40000.0
dependent_purchase = 180000.0
`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 72000.0, p.Education.University.DomesticAnnual)
	assert.Equal(t, 55000.0, p.Education.University.ForeignAnnual)
	assert.Equal(t, 40000.0, p.Vehicles.AnnualUpkeep)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, 10000.0, p.Health.InsurancePerOccupant)
	assert.Len(t, p.Housing.Neighborhoods, 7)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "premises.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
