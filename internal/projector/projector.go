// Package projector turns a household profile plus assumptions into
// year-indexed expense and income series in two currencies, and sizes the
// one-shot initial reserve requirement.
package projector

import (
	"fmt"
	"math"

	"patrimony-engine/internal/allocator"
	"patrimony-engine/internal/model"
	"patrimony-engine/internal/premises"
)

// Scale multiplier keys accepted in a projection request.
const (
	ScaleHousing           = "housing"
	ScaleEducationDomestic = "education_domestic"
	ScaleEducationForeign  = "education_foreign"
	ScaleHealth            = "health"
	ScaleVehicles          = "vehicles"
	ScaleLifestyle         = "lifestyle"
	ScaleTravel            = "travel"
)

type Result struct {
	Expenses        []model.ExpenseYear
	ForeignExpenses []model.ForeignExpenseYear
	Incomes         []model.IncomeYear
	InitialReserve  float64
}

// CrossRates precomputes the cross rate for every year of the horizon:
// rate[t] = rate[0] * ((1+infl_dom)/(1+infl_for))^t.
func CrossRates(macro model.MacroAssumptions) []float64 {
	if macro.HorizonYears <= 0 {
		return nil
	}
	rates := make([]float64, macro.HorizonYears)
	rates[0] = macro.InitialCrossRate
	ratio := 1.0
	if d := 1 + macro.InflationForeign/100; d != 0 {
		ratio = (1 + macro.InflationDomestic/100) / d
	}
	for t := 1; t < macro.HorizonYears; t++ {
		rates[t] = rates[t-1] * ratio
	}
	return rates
}

// dependent tracks one child's state across the projection, including the
// vehicle granted at 18 and retired at 26.
type dependent struct {
	age        int
	school     string
	abroad     bool
	hasVehicle bool
}

// Project computes the expense and income series over the horizon.
// initialCapital feeds the 10%-floor branch of the reserve rule. scales are
// optional per-category multipliers (missing keys mean 1). Reference-data
// misses produce warnings, never failures.
func Project(
	household model.HouseholdProfile,
	income model.IncomeAssumptions,
	macro model.MacroAssumptions,
	initialCapital float64,
	prem *premises.Premises,
	scales map[string]float64,
) (Result, []model.Message) {
	var msgs []model.Message
	if macro.HorizonYears <= 0 {
		return Result{}, msgs
	}

	inflDom := 1 + macro.InflationDomestic/100
	inflFor := 1 + macro.InflationForeign/100
	rates := CrossRates(macro)

	pricePerSqm := prem.PricePerSqm(household.Neighborhood)
	if household.Neighborhood != "" && pricePerSqm == 0 {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_NEIGHBORHOOD",
			Message: fmt.Sprintf("Neighborhood %q not in premises; housing value set to 0", household.Neighborhood),
		})
	}
	baseStaff := int(math.Ceil(household.ResidenceSqm * prem.Housing.StaffPer1000Sqm / 1000))
	if baseStaff < 1 {
		baseStaff = 1
	}
	occupants := float64(household.Occupants())
	tier := prem.LifestyleFor(household.LifestyleTier)

	deps := make([]dependent, len(household.Dependents))
	for i, d := range household.Dependents {
		deps[i] = dependent{age: d.Age, school: d.School, abroad: d.StudiesAbroad}
		if d.School != "" && !prem.HasSchool(d.School) {
			msgs = append(msgs, model.Message{
				Level:   model.LevelWarning,
				Code:    "UNKNOWN_SCHOOL",
				Message: fmt.Sprintf("School %q not in premises; tuition for that dependent set to 0", d.School),
			})
		}
	}

	scale := func(key string) float64 {
		if s, ok := scales[key]; ok {
			return s
		}
		return 1
	}

	salary := income.AnnualSalary
	res := Result{
		Expenses:        make([]model.ExpenseYear, 0, macro.HorizonYears),
		ForeignExpenses: make([]model.ForeignExpenseYear, 0, macro.HorizonYears),
		Incomes:         make([]model.IncomeYear, 0, macro.HorizonYears),
	}

	for year := 0; year < macro.HorizonYears; year++ {
		factorDom := math.Pow(inflDom, float64(year))
		factorFor := math.Pow(inflFor, float64(year))
		rate := rates[year]
		clientAge := household.ClientAge + year

		// Housing: maintenance on the property value, staff (base headcount
		// derived from area plus user-specified extras), per-occupant base.
		propertyValue := pricePerSqm * household.ResidenceSqm
		maintenance := propertyValue * prem.Housing.MaintenanceRate * factorDom
		staff := (float64(baseStaff)*prem.Housing.StaffAnnualCost +
			float64(household.ExtraStaff)*prem.Housing.ExtraStaffAnnualCost) * factorDom
		housing := maintenance + staff + occupants*prem.Housing.BaseCostPerOccupant*factorDom

		// Education and allowances.
		var educationDom, educationFor, allowances float64
		for i := range deps {
			age := deps[i].age + year
			if age <= 17 && deps[i].school != "" {
				if tuition, ok := prem.TuitionFor(deps[i].school, age); ok {
					educationDom += tuition * factorDom
				}
			}
			if age >= 18 && age <= 21 {
				if deps[i].abroad {
					educationFor += prem.Education.University.ForeignAnnual * factorFor
				} else {
					educationDom += prem.Education.University.DomesticAnnual * factorDom
				}
			}
			allowances += prem.AllowanceMonthly(age) * 12 * factorDom
		}

		// Health: age bands per adult and per dependent under 26, plus a
		// flat insurance premium per occupant.
		health := prem.HealthCostForAge(clientAge)
		if !household.NoSpouse {
			health += prem.HealthCostForAge(household.SpouseAge + year)
		}
		for i := range deps {
			if age := deps[i].age + year; age < 26 {
				health += prem.HealthCostForAge(age)
			}
		}
		health *= factorDom
		health += occupants * prem.Health.InsurancePerOccupant * factorDom

		// Vehicles: each dependent gets a one-time purchase at 18 and the
		// vehicle leaves the upkeep count the year they turn 26.
		var purchases float64
		activeDepVehicles := 0
		for i := range deps {
			age := deps[i].age + year
			if age >= 26 && deps[i].hasVehicle {
				deps[i].hasVehicle = false
			}
			if age == 18 && !deps[i].hasVehicle {
				deps[i].hasVehicle = true
				purchases += prem.Vehicles.DependentPurchase * factorDom
			}
			if deps[i].hasVehicle {
				activeDepVehicles++
			}
		}
		totalVehicles := float64(household.Vehicles + activeDepVehicles)
		vehicles := totalVehicles*prem.Vehicles.AnnualUpkeep*factorDom + purchases

		// Lifestyle tier plus the allowance schedule.
		lifestyle := (tier.Couple+tier.PerDependent*float64(len(deps)))*factorDom + allowances

		// International travel, foreign currency. Dependents 13 and older
		// keep adding the top increment regardless of age.
		var travelFor float64
		for trip := 0; trip < household.TripsPerYear; trip++ {
			cost := prem.Lifestyle.Trips.Couple
			for i := range deps {
				switch age := deps[i].age + year; {
				case age <= 6:
					cost += prem.Lifestyle.Trips.Child0to6
				case age <= 12:
					cost += prem.Lifestyle.Trips.Child7to12
				default:
					cost += prem.Lifestyle.Trips.Child13Plus
				}
			}
			travelFor += cost * factorFor
		}

		secondHome := household.SecondHomeMonthly * 12 * factorDom
		luxury := household.LuxuryMonthly * 12 * factorDom
		philanthropy := household.PhilanthropyAnnual * factorDom

		housing *= scale(ScaleHousing)
		educationDom *= scale(ScaleEducationDomestic)
		educationFor *= scale(ScaleEducationForeign)
		health *= scale(ScaleHealth)
		vehicles *= scale(ScaleVehicles)
		lifestyle *= scale(ScaleLifestyle)
		travelFor *= scale(ScaleTravel)

		education := educationDom + educationFor*rate
		travel := travelFor * rate
		total := housing + education + health + vehicles + lifestyle +
			travel + secondHome + luxury + philanthropy

		res.Expenses = append(res.Expenses, model.ExpenseYear{
			Year:         year + 1,
			Housing:      housing,
			Education:    education,
			Health:       health,
			Vehicles:     vehicles,
			Lifestyle:    lifestyle,
			Travel:       travel,
			SecondHome:   secondHome,
			Luxury:       luxury,
			Philanthropy: philanthropy,
			Total:        total,
		})
		res.ForeignExpenses = append(res.ForeignExpenses, model.ForeignExpenseYear{
			Year:      year + 1,
			Education: educationFor,
			Travel:    travelFor,
			Total:     educationFor + travelFor,
		})

		// Income: salary holds flat until retirement then drops to zero;
		// rentals and dividends compound at their own growth rates.
		sal := salary
		if clientAge >= income.RetirementAge {
			sal = 0
		}
		rentDom := income.RentMonthlyDomestic * 12 * math.Pow(1+income.RentGrowthDomestic/100, float64(year))
		rentFor := income.RentMonthlyForeign * 12 * math.Pow(1+income.RentGrowthForeign/100, float64(year)) * rate
		divDom := income.DividendsDomestic * math.Pow(1+income.DividendGrowthDomestic/100, float64(year))
		divFor := income.DividendsForeign * math.Pow(1+income.DividendGrowthForeign/100, float64(year)) * rate
		res.Incomes = append(res.Incomes, model.IncomeYear{
			Year:              year + 1,
			Salary:            sal,
			RentDomestic:      rentDom,
			RentForeign:       rentFor,
			DividendsDomestic: divDom,
			DividendsForeign:  divFor,
			Total:             sal + rentDom + rentFor + divDom + divFor,
		})
		salary *= inflDom
	}

	expenseTotals := make([]float64, len(res.Expenses))
	for i, e := range res.Expenses {
		expenseTotals[i] = e.Total
	}
	incomeTotals := make([]float64, len(res.Incomes))
	for i, in := range res.Incomes {
		incomeTotals[i] = in.Total
	}
	res.InitialReserve = allocator.RequiredReserve(expenseTotals, incomeTotals, 0, initialCapital)
	return res, msgs
}
