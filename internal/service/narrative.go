package service

import "amara-match/internal/domain"

// NarrativeEngine mapea umbrales de puntaje a oraciones fijas de fortalezas y
// riesgos. Es completamente determinista: mismos insumos, mismas listas.
type NarrativeEngine struct{}

const (
	maxStrengths = 5
	maxRiskAreas = 4
)

// traitBand dispara una oracion cuando el puntaje cruza el umbral. Las bandas
// de un mismo rasgo son independientes: pueden disparar mas de una.
type traitBand struct {
	trait     string
	threshold int
	text      string
}

var strengthBands = []traitBand{
	{domain.TraitEXT, 70, "Excellent at building relationships and influencing others"},
	{domain.TraitEXT, 60, "Comfortable in collaborative environments"},
	{domain.TraitCON, 70, "Highly reliable and detail-oriented"},
	{domain.TraitCON, 60, "Consistent follow-through on commitments"},
	{domain.TraitEMO, 70, "Exceptional composure under pressure"},
	{domain.TraitEMO, 60, "Recovers quickly from setbacks"},
	{domain.TraitRISK, 70, "Thrives in uncertain, fast-changing environments"},
	{domain.TraitRISK, 60, "Comfortable making bold decisions"},
	{domain.TraitDEC, 70, "Quick decision-maker who adapts on the fly"},
	{domain.TraitDEC, 60, "Decisive under time pressure"},
	{domain.TraitMOT, 70, "Highly growth-oriented and ambitious"},
	{domain.TraitMOT, 60, "Actively seeks learning opportunities"},
	{domain.TraitCOG, 80, "Exceptional problem-solving and analytical skills"},
	{domain.TraitCOG, 65, "Strong critical thinking abilities"},
}

// GenerateStrengths evalua las bandas por rasgo en orden de declaracion y
// despues las reglas de estilo de trabajo; recorta a las 5 primeras.
func (NarrativeEngine) GenerateStrengths(traits domain.TraitScores, style domain.WorkStyle) []string {
	var strengths []string
	for _, band := range strengthBands {
		score, _ := traits.Get(band.trait)
		if score >= band.threshold {
			strengths = appendUnique(strengths, band.text)
		}
	}

	if style.TeamRole == "Leader" {
		strengths = appendUnique(strengths, "Natural leadership instincts")
	}
	if style.TeamRole == "Innovator" {
		strengths = appendUnique(strengths, "Creative problem-solver")
	}
	if style.ConflictStyle == "Collaborating" {
		strengths = appendUnique(strengths, "Skilled at finding win-win solutions")
	}

	return truncate(strengths, maxStrengths)
}

// GenerateRiskAreas marca riesgos por puntajes bajos o extremos, mas dos
// reglas sobre el valor de trabajo primario; recorta a los 4 primeros.
func (NarrativeEngine) GenerateRiskAreas(traits domain.TraitScores, values domain.WorkValues) []string {
	var risks []string

	if traits.EXT <= 35 {
		risks = appendUnique(risks, "May find highly social roles draining")
	}
	if traits.EXT >= 80 {
		risks = appendUnique(risks, "May struggle in isolated, independent work")
	}
	if traits.CON <= 35 {
		risks = appendUnique(risks, "May need support with detailed planning")
	}
	if traits.CON >= 85 {
		risks = appendUnique(risks, "May be inflexible when plans change")
	}
	if traits.EMO <= 40 {
		risks = appendUnique(risks, "High-pressure environments may be challenging")
	}
	if traits.RISK <= 30 {
		risks = appendUnique(risks, "May hesitate on decisions with uncertainty")
	}
	if traits.RISK >= 80 {
		risks = appendUnique(risks, "May take unnecessary risks without analysis")
	}
	if traits.DEC >= 80 {
		risks = appendUnique(risks, "May make decisions too quickly without data")
	}
	if traits.DEC <= 30 {
		risks = appendUnique(risks, "Analysis paralysis in time-sensitive situations")
	}
	if traits.MOT <= 40 {
		risks = appendUnique(risks, "May prefer stability over growth opportunities")
	}

	if values.Primary == domain.ValueAutonomy {
		risks = appendUnique(risks, "May resist micromanagement or rigid structures")
	}
	if values.Primary == domain.ValueStability {
		risks = appendUnique(risks, "May be uncomfortable with rapid change")
	}

	return truncate(risks, maxRiskAreas)
}

// appendUnique agrega una entrada solo si no esta ya en la lista, preservando
// el orden de construccion.
func appendUnique(list []string, entry string) []string {
	for _, existing := range list {
		if existing == entry {
			return list
		}
	}
	return append(list, entry)
}

func truncate(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
