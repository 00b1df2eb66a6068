package service

import (
	"math"
	"sort"

	"amara-match/internal/domain"
)

// CandidateProfile agrupa los insumos de matching de un candidato evaluado.
type CandidateProfile struct {
	Traits domain.TraitScores
	Values domain.WorkValues
	Style  domain.WorkStyle
}

// RoleFitStrategy calcula el fit de un perfil contra un rol concreto. Hay dos
// estrategias con la misma interfaz: la del catalogo fijo (mezcla ponderada de
// distancia de rasgos, valores, estilo y cultura) y la de roles personalizados
// (fit por rangos con puerta conductual y etiqueta de recomendacion).
type RoleFitStrategy interface {
	Fit(profile CandidateProfile) domain.RoleFitResult
}

// neutralScore se usa cuando un rol referencia un rasgo desconocido.
const neutralScore = 50

// behavioralScore es un proxy fijo de empleabilidad general, independiente de
// los pesos del rol: 0.3*EMO + 0.3*CON + 0.4*COG.
func behavioralScore(t domain.TraitScores) int {
	return int(math.Round(float64(t.EMO)*0.3 + float64(t.CON)*0.3 + float64(t.COG)*0.4))
}

// rating decide la recomendacion en orden estricto: la primera regla que
// aplica gana.
func rating(fitPercentage, behavioral int, meetsCognitive bool) (string, string) {
	if fitPercentage >= 75 && behavioral >= 65 && meetsCognitive {
		return domain.RatingProceed, domain.RatingColorGreen
	}
	if fitPercentage >= 55 && behavioral >= 50 {
		return domain.RatingProbe, domain.RatingColorBlue
	}
	return domain.RatingPass, domain.RatingColorOrange
}

// CustomRoleStrategy evalua contra un rol definido por un reclutador.
type CustomRoleStrategy struct {
	Role domain.CustomRole
}

// traitRangeFit puntua que tan adentro del rango ideal cae un puntaje:
// 100 dentro del rango, degradando 2 puntos por unidad de distancia al borde
// mas cercano, con piso en 0. Sin rango declarado no hay penalizacion.
func traitRangeFit(score int, r *domain.TraitRange) float64 {
	if r == nil {
		return 100
	}
	if score < r.Min {
		return math.Max(0, float64(100-(r.Min-score)*2))
	}
	if score > r.Max {
		return math.Max(0, float64(100-(score-r.Max)*2))
	}
	return 100
}

// Fit aplica el algoritmo canonico de roles personalizados: promedio ponderado
// de fits por rango, puerta cognitiva y etiqueta de recomendacion.
func (s CustomRoleStrategy) Fit(profile CandidateProfile) domain.RoleFitResult {
	role := s.Role
	traits := profile.Traits

	fitSum := 0.0
	totalWeight := 0.0
	for trait, weight := range role.TraitWeights {
		score, ok := traits.Get(trait)
		if !ok {
			score = neutralScore
		}
		var rng *domain.TraitRange
		if r, found := role.IdealRanges[trait]; found {
			rng = &r
		}
		fitSum += traitRangeFit(score, rng) * weight
		totalWeight += weight
	}

	// Configuracion degenerada (peso total 0): fit por defecto, no un error.
	fit := neutralScore
	if totalWeight > 0 {
		fit = int(math.Round(fitSum / totalWeight))
	}

	behavioral := behavioralScore(traits)

	minCognitive := role.MinimumCognitive
	if minCognitive == 0 {
		minCognitive = 50
	}
	meetsCognitive := traits.COG >= minCognitive

	label, color := rating(fit, behavioral, meetsCognitive)

	return domain.RoleFitResult{
		RoleID:        role.ID,
		Title:         role.Title,
		FitPercentage: fit,
		Rating:        label,
		RatingColor:   color,
	}
}

// CatalogRoleStrategy evalua contra un rol del catalogo fijo mezclando cuatro
// componentes: rasgos 50%, valores 25%, estilo 15% y cultura 10%. Este camino
// no produce etiqueta de recomendacion.
type CatalogRoleStrategy struct {
	Role domain.RoleProfile
}

func (s CatalogRoleStrategy) Fit(profile CandidateProfile) domain.RoleFitResult {
	role := s.Role

	traitFit := 0.0
	for trait, weight := range role.Weights {
		score, ok := profile.Traits.Get(trait)
		if !ok {
			score = neutralScore
		}
		diff := math.Abs(float64(score - role.Ideal[trait]))
		traitFit += math.Max(0, 100-diff*1.5) * weight
	}
	fit := traitFit * 0.5

	valueMatch := 40.0
	if contains(role.Values, profile.Values.Primary) {
		valueMatch = 100
	} else if contains(role.Values, profile.Values.Secondary) {
		valueMatch = 70
	}
	fit += valueMatch * 0.25

	teamRoleMatch := 50.0
	if contains(role.Style.TeamRole, profile.Style.TeamRole) {
		teamRoleMatch = 100
	}
	conflictMatch := 50.0
	if contains(role.Style.ConflictStyle, profile.Style.ConflictStyle) {
		conflictMatch = 100
	}
	fit += (teamRoleMatch + conflictMatch) / 2 * 0.15

	cultureFit := 70.0
	if role.Culture == domain.CultureMixed {
		cultureFit = 80
	}
	fit += cultureFit * 0.10

	return domain.RoleFitResult{
		RoleID:        role.ID,
		Title:         role.Title,
		FitPercentage: int(math.Round(fit)),
	}
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

// RoleMatcher aplica las estrategias sobre colecciones de roles y ordena los
// resultados de mayor a menor fit.
type RoleMatcher struct{}

// RankCatalog evalua el perfil contra todos los roles del catalogo fijo.
func (RoleMatcher) RankCatalog(profile CandidateProfile, roles []domain.RoleProfile) []domain.RoleFitResult {
	fits := make([]domain.RoleFitResult, 0, len(roles))
	for _, role := range roles {
		fits = append(fits, CatalogRoleStrategy{Role: role}.Fit(profile))
	}
	sortByFitDesc(fits)
	return fits
}

// MatchCustom evalua el perfil contra un rol personalizado.
func (RoleMatcher) MatchCustom(profile CandidateProfile, role domain.CustomRole) domain.RoleFitResult {
	return CustomRoleStrategy{Role: role}.Fit(profile)
}

// BehavioralScore expone el proxy de empleabilidad para vistas de reclutador.
func (RoleMatcher) BehavioralScore(traits domain.TraitScores) int {
	return behavioralScore(traits)
}

func sortByFitDesc(fits []domain.RoleFitResult) {
	sort.SliceStable(fits, func(i, j int) bool {
		return fits[i].FitPercentage > fits[j].FitPercentage
	})
}
