package domain

import "time"

// AssessmentResult es el registro agregado de una evaluacion completada.
// Se crea una sola vez por intento y es inmutable despues.
type AssessmentResult struct {
	ID                string            `json:"id"`
	CreatedAt         time.Time         `json:"createdAt"`
	Traits            TraitScores       `json:"traits"`
	WorkValues        WorkValues        `json:"workValues"`
	WorkStyle         WorkStyle         `json:"workStyle"`
	CompositeInsights CompositeInsights `json:"compositeInsights"`
	RoleFits          []RoleFitResult   `json:"roleFits"`
	Strengths         []string          `json:"strengths"`
	RiskAreas         []string          `json:"riskAreas"`
	QualityMetrics    QualityMetrics    `json:"qualityMetrics"`
}
