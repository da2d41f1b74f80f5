package premises

// Default returns the embedded reference tables. Values mirror the family
// office's standard premise sheet; a TOML file can override any section.
func Default() *Premises {
	return &Premises{
		Education: Education{
			Schools: []SchoolBand{
				{Name: "Escola Exemplo", MinAge: 2, MaxAge: 5, AnnualPrice: 50000},
				{Name: "Escola Exemplo", MinAge: 6, MaxAge: 14, AnnualPrice: 80000},
				{Name: "Escola Exemplo", MinAge: 15, MaxAge: 17, AnnualPrice: 100000},
				{Name: "Beacon School", MinAge: 2, MaxAge: 4, AnnualPrice: 78000},
				{Name: "Beacon School", MinAge: 5, MaxAge: 14, AnnualPrice: 118300},
				{Name: "Beacon School", MinAge: 15, MaxAge: 17, AnnualPrice: 152100},
				{Name: "Colégio Bandeirantes", MinAge: 12, MaxAge: 17, AnnualPrice: 77168},
				{Name: "Colégio Santa Cruz", MinAge: 12, MaxAge: 17, AnnualPrice: 87360},
				{Name: "Escola Alef Peretz", MinAge: 2, MaxAge: 17, AnnualPrice: 89609},
				{Name: "Escola Beit Yaacov", MinAge: 2, MaxAge: 4, AnnualPrice: 52996},
				{Name: "Escola Beit Yaacov", MinAge: 5, MaxAge: 14, AnnualPrice: 115206},
				{Name: "Escola Beit Yaacov", MinAge: 15, MaxAge: 17, AnnualPrice: 140093},
			},
			University: University{DomesticAnnual: 60000, ForeignAnnual: 50000},
		},
		Health: Health{
			Bands: []HealthBand{
				{AgeRange: "0–18", AnnualCost: 15000},
				{AgeRange: "19–35", AnnualCost: 20000},
				{AgeRange: "36–50", AnnualCost: 30000},
				{AgeRange: "51–65", AnnualCost: 45000},
				{AgeRange: "66+", AnnualCost: 60000},
			},
			InsurancePerOccupant: 10000,
		},
		Housing: Housing{
			Neighborhoods: []Neighborhood{
				{Name: "Jardins", PricePerSqm: 15000},
				{Name: "Itaim Bibi", PricePerSqm: 12000},
				{Name: "Vila Olimpia", PricePerSqm: 10000},
				{Name: "Pinheiros", PricePerSqm: 9000},
				{Name: "Moema", PricePerSqm: 8500},
				{Name: "Brooklin", PricePerSqm: 8000},
				{Name: "Alto de Pinheiros", PricePerSqm: 11000},
			},
			StaffPer1000Sqm:      2.0,
			StaffAnnualCost:      60000,
			ExtraStaffAnnualCost: 48000,
			BaseCostPerOccupant:  30000,
			MaintenanceRate:      0.02,
		},
		Vehicles: Vehicles{
			AnnualUpkeep:      50000,
			DependentPurchase: 200000,
		},
		Lifestyle: Lifestyle{
			Tiers: []LifestyleTier{
				{Tier: 1, Name: "Conservative", Couple: 20000, PerDependent: 5000},
				{Tier: 2, Name: "Moderate", Couple: 50000, PerDependent: 12000},
				{Tier: 3, Name: "Aggressive", Couple: 100000, PerDependent: 25000},
			},
			Trips: TripCosts{
				Couple:      10000,
				Child0to6:   2000,
				Child7to12:  3000,
				Child13Plus: 5000,
			},
		},
		Allowance: Allowance{
			Age10to13: 500,
			Age14to17: 1500,
			Age18to21: 2500,
		},
	}
}
