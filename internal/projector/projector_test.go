package projector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimony-engine/internal/model"
	"patrimony-engine/internal/premises"
)

func flatMacro(years int) model.MacroAssumptions {
	return model.MacroAssumptions{
		InitialCrossRate: 5,
		HorizonYears:     years,
	}
}

// Single client, no spouse, no dependents, no neighborhood, no trips: only
// base staff, occupant cost, health and lifestyle remain, flat at zero
// inflation.
func singleHousehold() model.HouseholdProfile {
	return model.HouseholdProfile{
		ClientAge:     40,
		NoSpouse:      true,
		LifestyleTier: 1,
	}
}

func TestCrossRates(t *testing.T) {
	macro := model.MacroAssumptions{
		InflationDomestic: 6,
		InflationForeign:  2,
		InitialCrossRate:  5,
		HorizonYears:      4,
	}
	rates := CrossRates(macro)
	require.Len(t, rates, 4)

	ratio := 1.06 / 1.02
	for i, r := range rates {
		assert.InDelta(t, 5*math.Pow(ratio, float64(i)), r, 1e-9, "year %d", i)
	}

	assert.Nil(t, CrossRates(model.MacroAssumptions{HorizonYears: 0}))
}

func TestProjectFlatExpenses(t *testing.T) {
	prem := premises.Default()
	res, msgs := Project(singleHousehold(), model.IncomeAssumptions{}, flatMacro(5), 0, prem, nil)

	assert.Empty(t, msgs)
	require.Len(t, res.Expenses, 5)

	// Staff minimum of one (60000) plus one occupant (30000).
	assert.InDelta(t, 90000, res.Expenses[0].Housing, 1e-9)
	// Age band 36–50 (30000) plus insurance for one occupant (10000).
	assert.InDelta(t, 40000, res.Expenses[0].Health, 1e-9)
	// Tier 1 couple amount, no dependents.
	assert.InDelta(t, 20000, res.Expenses[0].Lifestyle, 1e-9)
	assert.InDelta(t, 150000, res.Expenses[0].Total, 1e-9)

	// Zero inflation keeps every year identical.
	for _, e := range res.Expenses {
		assert.InDelta(t, res.Expenses[0].Total, e.Total, 1e-9)
	}
}

func TestProjectInitialReserve(t *testing.T) {
	prem := premises.Default()

	// No income: reserve covers the next four years of expenses.
	res, _ := Project(singleHousehold(), model.IncomeAssumptions{}, flatMacro(5), 10_000_000, prem, nil)
	assert.InDelta(t, 4*150000, res.InitialReserve, 1e-9)

	// A large salary pulls the shortfall below the first-year expense and
	// triggers the 10%-of-capital floor.
	income := model.IncomeAssumptions{AnnualSalary: 1_000_000, RetirementAge: 65}
	res, _ = Project(singleHousehold(), income, flatMacro(5), 10_000_000, prem, nil)
	assert.InDelta(t, 1_000_000, res.InitialReserve, 1e-9)
}

func TestProjectSalaryStopsAtRetirement(t *testing.T) {
	income := model.IncomeAssumptions{AnnualSalary: 100000, RetirementAge: 43}
	res, _ := Project(singleHousehold(), income, flatMacro(5), 0, premises.Default(), nil)

	require.Len(t, res.Incomes, 5)
	assert.InDelta(t, 100000, res.Incomes[0].Salary, 1e-9)
	assert.InDelta(t, 100000, res.Incomes[2].Salary, 1e-9)
	// Client turns 43 in year 3.
	assert.Zero(t, res.Incomes[3].Salary)
	assert.Zero(t, res.Incomes[4].Salary)
}

func TestProjectSalaryInflates(t *testing.T) {
	macro := flatMacro(3)
	macro.InflationDomestic = 10
	macro.InflationForeign = 10
	income := model.IncomeAssumptions{AnnualSalary: 100000, RetirementAge: 65}

	res, _ := Project(singleHousehold(), income, macro, 0, premises.Default(), nil)
	assert.InDelta(t, 100000, res.Incomes[0].Salary, 1e-9)
	assert.InDelta(t, 110000, res.Incomes[1].Salary, 1e-9)
	assert.InDelta(t, 121000, res.Incomes[2].Salary, 1e-9)
}

func TestProjectDependentVehicleLifecycle(t *testing.T) {
	household := singleHousehold()
	household.Dependents = []model.Dependent{{Age: 17}}

	res, _ := Project(household, model.IncomeAssumptions{}, flatMacro(10), 0, premises.Default(), nil)

	// Year 0: age 17, no vehicle.
	assert.Zero(t, res.Expenses[0].Vehicles)
	// Year 1: turns 18, purchase plus upkeep.
	assert.InDelta(t, 250000, res.Expenses[1].Vehicles, 1e-9)
	// Year 2: upkeep only.
	assert.InDelta(t, 50000, res.Expenses[2].Vehicles, 1e-9)
	// Year 9: dependent is 26, vehicle retired.
	assert.Zero(t, res.Expenses[9].Vehicles)
}

func TestProjectSchoolToUniversityTransition(t *testing.T) {
	household := singleHousehold()
	household.Dependents = []model.Dependent{{Age: 17, School: "Escola Exemplo", StudiesAbroad: true}}

	res, msgs := Project(household, model.IncomeAssumptions{}, flatMacro(2), 0, premises.Default(), nil)
	assert.Empty(t, msgs)

	// Year 0: age 17 hits the 15–17 tuition band, domestic currency.
	assert.InDelta(t, 100000, res.Expenses[0].Education, 1e-9)
	assert.Zero(t, res.ForeignExpenses[0].Education)

	// Year 1: age 18 leaves the school bands and starts university abroad,
	// 50000 USD native and converted at rate 5 into the domestic series.
	assert.InDelta(t, 50000, res.ForeignExpenses[1].Education, 1e-9)
	assert.InDelta(t, 250000, res.Expenses[1].Education, 1e-9)
}

func TestProjectForeignEducationConverted(t *testing.T) {
	household := singleHousehold()
	household.Dependents = []model.Dependent{{Age: 18, StudiesAbroad: true}}

	res, _ := Project(household, model.IncomeAssumptions{}, flatMacro(5), 0, premises.Default(), nil)

	// 50000 USD at rate 5 while the dependent is 18–21.
	assert.InDelta(t, 50000, res.ForeignExpenses[0].Education, 1e-9)
	assert.InDelta(t, 250000, res.Expenses[0].Education, 1e-9)
	assert.InDelta(t, 250000, res.Expenses[3].Education, 1e-9)
	// Dependent is 22 in year 4.
	assert.Zero(t, res.Expenses[4].Education)
}

func TestProjectTravelTopsOutAt13(t *testing.T) {
	household := singleHousehold()
	household.TripsPerYear = 1
	household.Dependents = []model.Dependent{{Age: 5}, {Age: 30}}

	res, _ := Project(household, model.IncomeAssumptions{}, flatMacro(2), 0, premises.Default(), nil)

	// Couple 10000, age 5 child 2000, adult dependent still 5000.
	assert.InDelta(t, 17000, res.ForeignExpenses[0].Travel, 1e-9)
	assert.InDelta(t, 17000*5, res.Expenses[0].Travel, 1e-9)
}

func TestProjectScales(t *testing.T) {
	prem := premises.Default()
	base, _ := Project(singleHousehold(), model.IncomeAssumptions{}, flatMacro(3), 0, prem, nil)
	scaled, _ := Project(singleHousehold(), model.IncomeAssumptions{}, flatMacro(3), 0, prem, map[string]float64{
		ScaleHousing: 2,
		ScaleHealth:  0.5,
	})

	assert.InDelta(t, 2*base.Expenses[0].Housing, scaled.Expenses[0].Housing, 1e-9)
	assert.InDelta(t, 0.5*base.Expenses[0].Health, scaled.Expenses[0].Health, 1e-9)
	assert.InDelta(t, base.Expenses[0].Lifestyle, scaled.Expenses[0].Lifestyle, 1e-9)
}

func TestProjectWarnsOnUnknownReferences(t *testing.T) {
	household := singleHousehold()
	household.Neighborhood = "Atlantis"
	household.Dependents = []model.Dependent{{Age: 10, School: "No Such School"}}

	_, msgs := Project(household, model.IncomeAssumptions{}, flatMacro(2), 0, premises.Default(), nil)

	require.Len(t, msgs, 2)
	codes := []string{msgs[0].Code, msgs[1].Code}
	assert.Contains(t, codes, "UNKNOWN_NEIGHBORHOOD")
	assert.Contains(t, codes, "UNKNOWN_SCHOOL")
	for _, m := range msgs {
		assert.Equal(t, model.LevelWarning, m.Level)
	}
}

func TestProjectKnownNeighborhoodDrivesMaintenance(t *testing.T) {
	household := singleHousehold()
	household.Neighborhood = "Jardins"
	household.ResidenceSqm = 400

	res, msgs := Project(household, model.IncomeAssumptions{}, flatMacro(1), 0, premises.Default(), nil)
	assert.Empty(t, msgs)

	// 400m² at 15000/m² -> 2% maintenance 120000; staff ceil(0.8)=1 at
	// 60000; one occupant at 30000.
	assert.InDelta(t, 120000+60000+30000, res.Expenses[0].Housing, 1e-9)
}

func TestProjectZeroHorizon(t *testing.T) {
	res, msgs := Project(singleHousehold(), model.IncomeAssumptions{}, flatMacro(0), 0, premises.Default(), nil)
	assert.Empty(t, msgs)
	assert.Empty(t, res.Expenses)
	assert.Zero(t, res.InitialReserve)
}
