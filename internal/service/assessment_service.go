package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"amara-match/internal/catalog"
	"amara-match/internal/domain"
	"amara-match/internal/repository"
)

// ErrNoResponses indica que el request no trajo una lista de respuestas.
var ErrNoResponses = errors.New("responses list is required")

// AssessmentService orquesta el pipeline completo de una evaluacion:
// respuestas -> rasgos -> valores/estilo -> metricas compuestas -> fits de
// catalogo -> narrativa -> metricas de calidad. La persistencia es best effort:
// un fallo del repositorio nunca bloquea ni corrompe el resultado.
type AssessmentService struct {
	cat       *catalog.Catalog
	scorer    *Scorer
	deriver   *Deriver
	matcher   RoleMatcher
	narrative NarrativeEngine
	repo      repository.AssessmentRepository
	logger    *zap.Logger
}

func NewAssessmentService(
	cat *catalog.Catalog,
	repo repository.AssessmentRepository,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		cat:     cat,
		scorer:  NewScorer(cat),
		deriver: NewDeriver(cat),
		repo:    repo,
		logger:  logger,
	}
}

// Evaluate procesa una lista ordenada de respuestas y devuelve el resultado
// agregado e inmutable de la evaluacion. Una lista vacia es valida (cada rasgo
// queda en su valor base); una lista nil se rechaza en el borde.
func (s *AssessmentService) Evaluate(ctx context.Context, responses []domain.Response) (domain.AssessmentResult, error) {
	if responses == nil {
		return domain.AssessmentResult{}, ErrNoResponses
	}

	rs := NewResponseSet(responses)

	traits := s.scorer.CalculateTraitScores(rs)
	values := s.deriver.ExtractWorkValues(rs)
	style := s.deriver.ExtractWorkStyle(rs)
	composites := s.deriver.CalculateCompositeInsights(traits, values)

	profile := CandidateProfile{Traits: traits, Values: values, Style: style}
	roleFits := s.matcher.RankCatalog(profile, s.cat.Roles())

	result := domain.AssessmentResult{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		Traits:            traits,
		WorkValues:        values,
		WorkStyle:         style,
		CompositeInsights: composites,
		RoleFits:          roleFits,
		Strengths:         s.narrative.GenerateStrengths(traits, style),
		RiskAreas:         s.narrative.GenerateRiskAreas(traits, values),
		QualityMetrics: domain.QualityMetrics{
			Consistency:     s.scorer.CalculateConsistency(rs),
			AvgResponseTime: s.scorer.CalculateAvgResponseTime(rs),
		},
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, result); err != nil {
			s.logger.Warn("assessment persist failed, returning result anyway",
				zap.Error(err), zap.String("assessment_id", result.ID))
		}
	}

	return result, nil
}
