// Package premises holds the static reference tables the projector reads:
// school tuition bands, healthcare cost bands, neighborhood prices, lifestyle
// tiers and the vehicle/trip/allowance constants. Tables ship with embedded
// defaults and can be overridden from a TOML file. Lookups never fail hard:
// malformed rows are skipped and misses fall back to the nearest sane value.
package premises

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type SchoolBand struct {
	Name        string  `toml:"name" json:"name"`
	MinAge      int     `toml:"min_age" json:"min_age"`
	MaxAge      int     `toml:"max_age" json:"max_age"`
	AnnualPrice float64 `toml:"annual_price" json:"annual_price"`
}

type University struct {
	DomesticAnnual float64 `toml:"domestic_annual" json:"domestic_annual"`
	ForeignAnnual  float64 `toml:"foreign_annual" json:"foreign_annual"`
}

type Education struct {
	Schools    []SchoolBand `toml:"schools" json:"schools"`
	University University   `toml:"university" json:"university"`
}

// HealthBand keys an annual cost by an age-range string such as "0–18",
// "66+" or "40". Unparseable ranges are skipped at lookup time.
type HealthBand struct {
	AgeRange   string  `toml:"age_range" json:"age_range"`
	AnnualCost float64 `toml:"annual_cost" json:"annual_cost"`
}

type Health struct {
	Bands                []HealthBand `toml:"bands" json:"bands"`
	InsurancePerOccupant float64      `toml:"insurance_per_occupant" json:"insurance_per_occupant"`
}

type Neighborhood struct {
	Name        string  `toml:"name" json:"name"`
	PricePerSqm float64 `toml:"price_per_sqm" json:"price_per_sqm"`
}

type Housing struct {
	Neighborhoods        []Neighborhood `toml:"neighborhoods" json:"neighborhoods"`
	StaffPer1000Sqm      float64        `toml:"staff_per_1000_sqm" json:"staff_per_1000_sqm"`
	StaffAnnualCost      float64        `toml:"staff_annual_cost" json:"staff_annual_cost"`
	ExtraStaffAnnualCost float64        `toml:"extra_staff_annual_cost" json:"extra_staff_annual_cost"`
	BaseCostPerOccupant  float64        `toml:"base_cost_per_occupant" json:"base_cost_per_occupant"`
	MaintenanceRate      float64        `toml:"maintenance_rate" json:"maintenance_rate"`
}

type Vehicles struct {
	AnnualUpkeep      float64 `toml:"annual_upkeep" json:"annual_upkeep"`
	DependentPurchase float64 `toml:"dependent_purchase" json:"dependent_purchase"`
}

type LifestyleTier struct {
	Tier         int     `toml:"tier" json:"tier"`
	Name         string  `toml:"name" json:"name"`
	Couple       float64 `toml:"couple" json:"couple"`
	PerDependent float64 `toml:"per_dependent" json:"per_dependent"`
}

// TripCosts are the foreign-currency components of one international trip.
type TripCosts struct {
	Couple      float64 `toml:"couple" json:"couple"`
	Child0to6   float64 `toml:"child_0_6" json:"child_0_6"`
	Child7to12  float64 `toml:"child_7_12" json:"child_7_12"`
	Child13Plus float64 `toml:"child_13_plus" json:"child_13_plus"`
}

type Lifestyle struct {
	Tiers []LifestyleTier `toml:"tiers" json:"tiers"`
	Trips TripCosts       `toml:"trips" json:"trips"`
}

// Allowance is the monthly stipend per dependent by age band.
type Allowance struct {
	Age10to13 float64 `toml:"age_10_13" json:"age_10_13"`
	Age14to17 float64 `toml:"age_14_17" json:"age_14_17"`
	Age18to21 float64 `toml:"age_18_21" json:"age_18_21"`
}

type Premises struct {
	Education Education `toml:"education" json:"education"`
	Health    Health    `toml:"health" json:"health"`
	Housing   Housing   `toml:"housing" json:"housing"`
	Vehicles  Vehicles  `toml:"vehicles" json:"vehicles"`
	Lifestyle Lifestyle `toml:"lifestyle" json:"lifestyle"`
	Allowance Allowance `toml:"allowance" json:"allowance"`
}

// Load reads a TOML premises file over the embedded defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (*Premises, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("reading premises: %w", err)
	}
	if err := toml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing premises: %w", err)
	}
	return p, nil
}

// TuitionFor returns the annual tuition of the band matching the dependent's
// age. Inverted or zero-width bands never match and fall through.
func (p *Premises) TuitionFor(school string, age int) (float64, bool) {
	if school == "" {
		return 0, false
	}
	for _, b := range p.Education.Schools {
		if b.Name != school {
			continue
		}
		if b.MinAge <= age && age <= b.MaxAge {
			return b.AnnualPrice, true
		}
	}
	return 0, false
}

// HasSchool reports whether any band exists under the given school name.
func (p *Premises) HasSchool(school string) bool {
	for _, b := range p.Education.Schools {
		if b.Name == school {
			return true
		}
	}
	return false
}

// HealthCostForAge resolves the annual healthcare cost band for an age.
// Rows with unparseable ranges are skipped; if nothing matches, the last
// defined bracket's cost is used so very old ages extrapolate upward.
func (p *Premises) HealthCostForAge(age int) float64 {
	bands := p.Health.Bands
	if len(bands) == 0 {
		return 0
	}
	for _, b := range bands {
		minAge, maxAge, ok := parseAgeRange(b.AgeRange)
		if !ok {
			continue
		}
		if minAge <= age && age <= maxAge {
			return b.AnnualCost
		}
	}
	return bands[len(bands)-1].AnnualCost
}

// PricePerSqm returns the neighborhood's price per m², or 0 for unknown
// neighborhoods.
func (p *Premises) PricePerSqm(neighborhood string) float64 {
	for _, n := range p.Housing.Neighborhoods {
		if n.Name == neighborhood {
			return n.PricePerSqm
		}
	}
	return 0
}

// LifestyleFor resolves a tier ordinal, falling back to the moderate tier
// (2), then the first defined tier.
func (p *Premises) LifestyleFor(tier int) LifestyleTier {
	var fallback *LifestyleTier
	for i := range p.Lifestyle.Tiers {
		t := &p.Lifestyle.Tiers[i]
		if t.Tier == tier {
			return *t
		}
		if t.Tier == 2 {
			fallback = t
		}
	}
	if fallback != nil {
		return *fallback
	}
	if len(p.Lifestyle.Tiers) > 0 {
		return p.Lifestyle.Tiers[0]
	}
	return LifestyleTier{}
}

// AllowanceMonthly returns the monthly stipend for a dependent's age band,
// 0 outside the 10–21 bands.
func (p *Premises) AllowanceMonthly(age int) float64 {
	switch {
	case age >= 10 && age <= 13:
		return p.Allowance.Age10to13
	case age >= 14 && age <= 17:
		return p.Allowance.Age14to17
	case age >= 18 && age <= 21:
		return p.Allowance.Age18to21
	}
	return 0
}

// parseAgeRange accepts "a–b" (en dash or hyphen), "a+" and bare "a".
func parseAgeRange(s string) (minAge, maxAge int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	var sep string
	switch {
	case strings.Contains(s, "–"):
		sep = "–"
	case strings.Contains(s, "-"):
		sep = "-"
	}
	if sep != "" {
		parts := strings.SplitN(s, sep, 2)
		lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return lo, hi, true
	}
	if strings.HasSuffix(s, "+") {
		lo, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "+")))
		if err != nil {
			return 0, 0, false
		}
		return lo, 200, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, false
	}
	return v, v, true
}
