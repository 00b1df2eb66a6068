package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"amara-match/internal/domain"
	"amara-match/internal/llm"
)

// ErrOverviewNotConfigured indica que no hay LLM disponible para redactar overviews.
var ErrOverviewNotConfigured = errors.New("overview service not configured")

// OverviewService redacta un resumen narrativo del resultado usando un LLM.
// Es un adorno best effort sobre el resultado ya calculado: si falla, el
// resultado de la evaluacion sigue completo y valido.
type OverviewService struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewOverviewService(llmClient llm.Client, logger *zap.Logger) *OverviewService {
	return &OverviewService{llmClient: llmClient, logger: logger}
}

// Overview pide al LLM una lectura honesta del perfil. Devuelve el texto plano
// tal cual lo produjo el modelo.
func (s *OverviewService) Overview(ctx context.Context, result domain.AssessmentResult) (string, error) {
	if s == nil || s.llmClient == nil {
		return "", ErrOverviewNotConfigured
	}

	text, err := s.llmClient.Generate(ctx, "", buildOverviewPrompt(result))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("overview generation failed", zap.Error(err))
		}
		return "", fmt.Errorf("llm generate: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func buildOverviewPrompt(result domain.AssessmentResult) string {
	var b strings.Builder
	b.WriteString("You are a direct, no-nonsense hiring consultant reviewing a candidate's psychometric assessment. Give HONEST, BALANCED feedback in two short paragraphs: what this profile is good for, and what a hiring manager should watch out for.\n\n")

	t := result.Traits
	fmt.Fprintf(&b, "Trait scores (0-100): Extraversion %d, Conscientiousness %d, Emotional Stability %d, Risk Tolerance %d, Decision Speed %d, Motivation %d, Cognitive %d.\n",
		t.EXT, t.CON, t.EMO, t.RISK, t.DEC, t.MOT, t.COG)
	fmt.Fprintf(&b, "Work values: primary %s, secondary %s.\n",
		result.WorkValues.Primary, result.WorkValues.Secondary)
	fmt.Fprintf(&b, "Work style: %s / %s / %s.\n",
		result.WorkStyle.TeamRole, result.WorkStyle.ConflictStyle, result.WorkStyle.CommunicationStyle)
	fmt.Fprintf(&b, "Culture fit: startup %d%%, corporate %d%%. Remote readiness %d%%. Career path: %s.\n",
		result.CompositeInsights.CultureFit.Startup,
		result.CompositeInsights.CultureFit.Corporate,
		result.CompositeInsights.RemoteReadiness,
		result.CompositeInsights.CareerPath)

	if len(result.RoleFits) > 0 {
		b.WriteString("Top role matches:\n")
		top := result.RoleFits
		if len(top) > 3 {
			top = top[:3]
		}
		for _, fit := range top {
			fmt.Fprintf(&b, "- %s: %d%%\n", fit.Title, fit.FitPercentage)
		}
	}
	if len(result.Strengths) > 0 {
		fmt.Fprintf(&b, "Strengths: %s.\n", strings.Join(result.Strengths, "; "))
	}
	if len(result.RiskAreas) > 0 {
		fmt.Fprintf(&b, "Risk areas: %s.\n", strings.Join(result.RiskAreas, "; "))
	}
	return b.String()
}
