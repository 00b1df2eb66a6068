package catalog

import "amara-match/internal/domain"

// roleProfiles define el catalogo fijo de roles. Los pesos de cada rol suman 1
// para que el componente de rasgos del fit quede en escala 0-100.
func roleProfiles() []domain.RoleProfile {
	return []domain.RoleProfile{
		{
			ID:    "software-engineer",
			Title: "Software Engineer",
			Weights: map[string]float64{
				domain.TraitCOG: 0.35, domain.TraitCON: 0.25, domain.TraitDEC: 0.15,
				domain.TraitEMO: 0.15, domain.TraitMOT: 0.10,
			},
			Ideal: map[string]int{
				domain.TraitCOG: 80, domain.TraitCON: 70, domain.TraitDEC: 55,
				domain.TraitEMO: 65, domain.TraitMOT: 70,
			},
			Culture: domain.CultureMixed,
			Values:  []string{domain.ValueChallenge, domain.ValueAutonomy, domain.ValueIndependence},
			Style: domain.StylePreference{
				TeamRole:      []string{"Executor", "Innovator"},
				ConflictStyle: []string{"Collaborating", "Compromising"},
			},
		},
		{
			ID:    "product-manager",
			Title: "Product Manager",
			Weights: map[string]float64{
				domain.TraitEXT: 0.20, domain.TraitCOG: 0.20, domain.TraitDEC: 0.20,
				domain.TraitCON: 0.20, domain.TraitEMO: 0.20,
			},
			Ideal: map[string]int{
				domain.TraitEXT: 65, domain.TraitCOG: 70, domain.TraitDEC: 70,
				domain.TraitCON: 65, domain.TraitEMO: 70,
			},
			Culture: domain.CultureMixed,
			Values:  []string{domain.ValueChallenge, domain.ValueCollaboration, domain.ValueRecognition},
			Style: domain.StylePreference{
				TeamRole:      []string{"Leader", "Innovator"},
				ConflictStyle: []string{"Collaborating"},
			},
		},
		{
			ID:    "sales-executive",
			Title: "Sales Executive",
			Weights: map[string]float64{
				domain.TraitEXT: 0.35, domain.TraitEMO: 0.20, domain.TraitMOT: 0.20,
				domain.TraitDEC: 0.15, domain.TraitRISK: 0.10,
			},
			Ideal: map[string]int{
				domain.TraitEXT: 85, domain.TraitEMO: 70, domain.TraitMOT: 80,
				domain.TraitDEC: 70, domain.TraitRISK: 65,
			},
			Culture: domain.CultureStartup,
			Values:  []string{domain.ValueRecognition, domain.ValueChallenge},
			Style: domain.StylePreference{
				TeamRole:      []string{"Leader"},
				ConflictStyle: []string{"Competing", "Collaborating"},
			},
		},
		{
			ID:    "operations-manager",
			Title: "Operations Manager",
			Weights: map[string]float64{
				domain.TraitCON: 0.35, domain.TraitEMO: 0.25, domain.TraitDEC: 0.20,
				domain.TraitCOG: 0.20,
			},
			Ideal: map[string]int{
				domain.TraitCON: 85, domain.TraitEMO: 70, domain.TraitDEC: 60,
				domain.TraitCOG: 65,
			},
			Culture: domain.CultureCorporate,
			Values:  []string{domain.ValueStructure, domain.ValueStability, domain.ValueSecurity},
			Style: domain.StylePreference{
				TeamRole:      []string{"Executor", "Leader"},
				ConflictStyle: []string{"Compromising", "Collaborating"},
			},
		},
		{
			ID:    "startup-generalist",
			Title: "Startup Generalist",
			Weights: map[string]float64{
				domain.TraitRISK: 0.30, domain.TraitMOT: 0.25, domain.TraitDEC: 0.20,
				domain.TraitEXT: 0.15, domain.TraitCOG: 0.10,
			},
			Ideal: map[string]int{
				domain.TraitRISK: 80, domain.TraitMOT: 80, domain.TraitDEC: 75,
				domain.TraitEXT: 65, domain.TraitCOG: 70,
			},
			Culture: domain.CultureStartup,
			Values:  []string{domain.ValueAutonomy, domain.ValueChallenge, domain.ValueIndependence},
			Style: domain.StylePreference{
				TeamRole:      []string{"Innovator", "Leader"},
				ConflictStyle: []string{"Collaborating", "Competing"},
			},
		},
		{
			ID:    "data-analyst",
			Title: "Data Analyst",
			Weights: map[string]float64{
				domain.TraitCOG: 0.40, domain.TraitCON: 0.30, domain.TraitEMO: 0.15,
				domain.TraitMOT: 0.15,
			},
			Ideal: map[string]int{
				domain.TraitCOG: 85, domain.TraitCON: 75, domain.TraitEMO: 60,
				domain.TraitMOT: 65,
			},
			Culture: domain.CultureMixed,
			Values:  []string{domain.ValueStructure, domain.ValueChallenge, domain.ValueIndependence},
			Style: domain.StylePreference{
				TeamRole:      []string{"Executor", "Supporter"},
				ConflictStyle: []string{"Avoiding", "Compromising", "Collaborating"},
			},
		},
		{
			ID:    "customer-success",
			Title: "Customer Success Manager",
			Weights: map[string]float64{
				domain.TraitEXT: 0.25, domain.TraitEMO: 0.30, domain.TraitCON: 0.25,
				domain.TraitMOT: 0.20,
			},
			Ideal: map[string]int{
				domain.TraitEXT: 70, domain.TraitEMO: 80, domain.TraitCON: 70,
				domain.TraitMOT: 65,
			},
			Culture: domain.CultureCorporate,
			Values:  []string{domain.ValueCollaboration, domain.ValueStability, domain.ValueRecognition},
			Style: domain.StylePreference{
				TeamRole:      []string{"Supporter", "Executor"},
				ConflictStyle: []string{"Collaborating", "Compromising"},
			},
		},
	}
}
