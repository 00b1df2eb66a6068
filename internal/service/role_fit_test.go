package service

import (
	"testing"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
)

func TestTraitRangeFit(t *testing.T) {
	tests := []struct {
		name  string
		score int
		rng   *domain.TraitRange
		want  float64
	}{
		{"inside range", 60, &domain.TraitRange{Min: 50, Max: 70}, 100},
		{"at lower bound", 50, &domain.TraitRange{Min: 50, Max: 70}, 100},
		{"at upper bound", 70, &domain.TraitRange{Min: 50, Max: 70}, 100},
		{"below by 10", 40, &domain.TraitRange{Min: 50, Max: 70}, 80},
		{"above by 10", 80, &domain.TraitRange{Min: 50, Max: 70}, 80},
		{"far below floors at zero", 0, &domain.TraitRange{Min: 60, Max: 80}, 0},
		{"no range means no penalty", 5, nil, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := traitRangeFit(tc.score, tc.rng); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBehavioralScore(t *testing.T) {
	traits := domain.TraitScores{EMO: 70, CON: 80, COG: 50}
	// 0.3*70 + 0.3*80 + 0.4*50 = 65
	if got := behavioralScore(traits); got != 65 {
		t.Fatalf("expected behavioral 65, got %d", got)
	}
}

func TestRatingThresholds(t *testing.T) {
	tests := []struct {
		name           string
		fit            int
		behavioral     int
		meetsCognitive bool
		wantLabel      string
		wantColor      string
	}{
		{"all gates pass", 75, 65, true, domain.RatingProceed, domain.RatingColorGreen},
		{"fit below proceed threshold", 74, 65, true, domain.RatingProbe, domain.RatingColorBlue},
		{"behavioral below proceed threshold", 75, 64, true, domain.RatingProbe, domain.RatingColorBlue},
		{"cognitive gate blocks proceed", 90, 90, false, domain.RatingProbe, domain.RatingColorBlue},
		{"fit below probe threshold", 54, 90, true, domain.RatingPass, domain.RatingColorOrange},
		{"behavioral below probe threshold", 80, 49, false, domain.RatingPass, domain.RatingColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, color := rating(tc.fit, tc.behavioral, tc.meetsCognitive)
			if label != tc.wantLabel || color != tc.wantColor {
				t.Fatalf("expected %s/%s, got %s/%s", tc.wantLabel, tc.wantColor, label, color)
			}
		})
	}
}

func TestCustomRoleStrategyFit(t *testing.T) {
	role := domain.CustomRole{
		ID:    "r1",
		Title: "Backend Engineer",
		TraitWeights: map[string]float64{
			domain.TraitCOG: 2.0,
			domain.TraitCON: 1.0,
		},
		IdealRanges: map[string]domain.TraitRange{
			domain.TraitCOG: {Min: 70, Max: 100},
			domain.TraitCON: {Min: 60, Max: 90},
		},
		MinimumCognitive: 60,
	}

	profile := CandidateProfile{
		Traits: domain.TraitScores{COG: 80, CON: 50, EMO: 70},
	}

	got := CustomRoleStrategy{Role: role}.Fit(profile)

	// COG dentro del rango (100*2) + CON 10 por debajo (80*1) = 280/3 -> 93
	if got.FitPercentage != 93 {
		t.Fatalf("expected fit 93, got %d", got.FitPercentage)
	}
	// behavioral = 0.3*70 + 0.3*50 + 0.4*80 = 68; fit>=75 y COG 80 >= 60 -> PROCEED
	if got.Rating != domain.RatingProceed || got.RatingColor != domain.RatingColorGreen {
		t.Fatalf("expected PROCEED/green, got %s/%s", got.Rating, got.RatingColor)
	}
	if got.RoleID != "r1" || got.Title != "Backend Engineer" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
}

func TestCustomRoleStrategyDefaults(t *testing.T) {
	t.Run("zero total weight defaults to 50", func(t *testing.T) {
		role := domain.CustomRole{ID: "empty", Title: "Empty"}
		got := CustomRoleStrategy{Role: role}.Fit(CandidateProfile{
			Traits: domain.TraitScores{EMO: 100, CON: 100, COG: 100},
		})
		if got.FitPercentage != 50 {
			t.Fatalf("expected default fit 50, got %d", got.FitPercentage)
		}
	})

	t.Run("unknown trait scores as neutral 50", func(t *testing.T) {
		role := domain.CustomRole{
			ID:    "odd",
			Title: "Odd",
			TraitWeights: map[string]float64{
				"CHARISMA": 1.0,
			},
			IdealRanges: map[string]domain.TraitRange{
				"CHARISMA": {Min: 40, Max: 60},
			},
		}
		got := CustomRoleStrategy{Role: role}.Fit(CandidateProfile{})
		// 50 cae dentro del rango 40-60 -> fit 100.
		if got.FitPercentage != 100 {
			t.Fatalf("expected fit 100 for neutral-in-range, got %d", got.FitPercentage)
		}
	})

	t.Run("unset minimum cognitive defaults to 50", func(t *testing.T) {
		role := domain.CustomRole{
			ID:           "gate",
			Title:        "Gate",
			TraitWeights: map[string]float64{domain.TraitCON: 1.0},
		}
		strong := CandidateProfile{Traits: domain.TraitScores{CON: 90, EMO: 90, COG: 49}}
		got := CustomRoleStrategy{Role: role}.Fit(strong)
		// fit 100 (sin rango), behavioral alto, pero COG 49 < 50 -> PROBE.
		if got.Rating != domain.RatingProbe {
			t.Fatalf("expected PROBE when cognitive gate fails, got %s", got.Rating)
		}
	})
}

func TestCustomRoleStrategyDeterministic(t *testing.T) {
	role := domain.CustomRole{
		ID:           "r",
		Title:        "R",
		TraitWeights: map[string]float64{domain.TraitEXT: 1.5, domain.TraitCOG: 0.5},
		IdealRanges: map[string]domain.TraitRange{
			domain.TraitEXT: {Min: 30, Max: 60},
		},
	}
	profile := CandidateProfile{Traits: domain.TraitScores{EXT: 72, CON: 55, EMO: 60, COG: 66}}

	first := CustomRoleStrategy{Role: role}.Fit(profile)
	for i := 0; i < 20; i++ {
		if got := (CustomRoleStrategy{Role: role}).Fit(profile); got != first {
			t.Fatalf("expected deterministic fit, got %+v vs %+v", got, first)
		}
	}
}

func TestCatalogRoleStrategyComponents(t *testing.T) {
	role := domain.RoleProfile{
		ID:      "role",
		Title:   "Role",
		Weights: map[string]float64{domain.TraitCOG: 1.0},
		Ideal:   map[string]int{domain.TraitCOG: 80},
		Culture: domain.CultureMixed,
		Values:  []string{domain.ValueChallenge},
		Style: domain.StylePreference{
			TeamRole:      []string{"Executor"},
			ConflictStyle: []string{"Collaborating"},
		},
	}

	profile := CandidateProfile{
		Traits: domain.TraitScores{COG: 80},
		Values: domain.WorkValues{Primary: domain.ValueChallenge, Secondary: domain.ValueAutonomy},
		Style:  domain.WorkStyle{TeamRole: "Executor", ConflictStyle: "Collaborating"},
	}

	// rasgos 100*0.5 + valores 100*0.25 + estilo 100*0.15 + cultura 80*0.1 = 98
	if got := (CatalogRoleStrategy{Role: role}).Fit(profile); got.FitPercentage != 98 {
		t.Fatalf("expected fit 98, got %d", got.FitPercentage)
	}

	// Valor primario sin match, secundario con match -> 70 puntos para valores.
	profile.Values = domain.WorkValues{Primary: domain.ValueStability, Secondary: domain.ValueChallenge}
	// rasgos 50 + 70*0.25 + 15 + 8 = 90.5 -> 91
	if got := (CatalogRoleStrategy{Role: role}).Fit(profile); got.FitPercentage != 91 {
		t.Fatalf("expected fit 91 with secondary value match, got %d", got.FitPercentage)
	}

	// Sin match de valores ni estilo y cultura no mixta.
	role.Culture = domain.CultureStartup
	profile.Values = domain.WorkValues{Primary: domain.ValueStability, Secondary: domain.ValueSecurity}
	profile.Style = domain.WorkStyle{TeamRole: "Leader", ConflictStyle: "Competing"}
	// rasgos 50 + 40*0.25 + 50*0.15 + 70*0.1 = 74.5 -> 75
	if got := (CatalogRoleStrategy{Role: role}).Fit(profile); got.FitPercentage != 75 {
		t.Fatalf("expected fit 75, got %d", got.FitPercentage)
	}

	// La distancia de rasgos degrada 1.5 puntos por unidad.
	profile.Traits = domain.TraitScores{COG: 60}
	// rasgo: 100-20*1.5 = 70 -> 35 + 10 + 7.5 + 7 = 59.5 -> 60
	if got := (CatalogRoleStrategy{Role: role}).Fit(profile); got.FitPercentage != 60 {
		t.Fatalf("expected fit 60, got %d", got.FitPercentage)
	}
}

func TestRankCatalogSortedDescending(t *testing.T) {
	cat := catalog.NewDefault()
	matcher := RoleMatcher{}

	profiles := []CandidateProfile{
		{
			Traits: domain.TraitScores{EXT: 85, CON: 60, EMO: 70, RISK: 70, DEC: 75, MOT: 80, COG: 65},
			Values: domain.WorkValues{Primary: domain.ValueRecognition, Secondary: domain.ValueChallenge},
			Style:  domain.WorkStyle{TeamRole: "Leader", ConflictStyle: "Competing", CommunicationStyle: "Direct"},
		},
		{
			Traits: domain.TraitScores{EXT: 30, CON: 85, EMO: 65, RISK: 35, DEC: 45, MOT: 60, COG: 90},
			Values: domain.WorkValues{Primary: domain.ValueStructure, Secondary: domain.ValueIndependence},
			Style:  domain.WorkStyle{TeamRole: "Executor", ConflictStyle: "Avoiding", CommunicationStyle: "Analytical"},
		},
		{},
	}

	for _, profile := range profiles {
		fits := matcher.RankCatalog(profile, cat.Roles())
		if len(fits) != len(cat.Roles()) {
			t.Fatalf("expected %d fits, got %d", len(cat.Roles()), len(fits))
		}
		for i := 1; i < len(fits); i++ {
			if fits[i].FitPercentage > fits[i-1].FitPercentage {
				t.Fatalf("fits not sorted descending: %+v", fits)
			}
		}
		// El camino de catalogo no produce etiqueta de recomendacion.
		for _, fit := range fits {
			if fit.Rating != "" || fit.RatingColor != "" {
				t.Fatalf("catalog path should not attach ratings: %+v", fit)
			}
		}
	}
}
