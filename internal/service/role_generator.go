package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"amara-match/internal/domain"
	"amara-match/internal/llm"
)

// ErrGeneratorNotConfigured indica que no hay LLM disponible para generar roles.
var ErrGeneratorNotConfigured = errors.New("role generator not configured")

// RoleGenerator redacta requisitos de rol (pesos y rangos por rasgo) a partir
// de una descripcion libre, usando un LLM. Es un asistente best effort: el
// reclutador revisa y persiste el borrador por la via normal de creacion.
type RoleGenerator struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewRoleGenerator(llmClient llm.Client, logger *zap.Logger) *RoleGenerator {
	return &RoleGenerator{llmClient: llmClient, logger: logger}
}

const roleGeneratorSystemPrompt = `You are an HR expert helping recruiters define role requirements. Given a job description, generate trait requirements for candidate matching.

You must respond with ONLY a valid JSON object (no markdown, no explanation) with this exact structure:
{
  "title": "Role Title",
  "description": "Brief role description",
  "culture": "startup" | "corporate" | "hybrid",
  "minimumCognitive": 50-80,
  "traits": {
    "EXT": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "CON": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "EMO": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "RISK": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "DEC": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "MOT": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 },
    "COG": { "weight": 0.5-2.0, "min": 0-100, "max": 0-100 }
  }
}

Trait meanings:
- EXT (Extraversion): Social energy, assertiveness. Higher for sales, leadership. Lower OK for technical roles.
- CON (Conscientiousness): Organization, reliability. Higher for operations, project management.
- EMO (Emotional Stability): Stress handling. Higher for high-pressure roles.
- RISK (Risk Tolerance): Comfort with uncertainty. Higher for startups, innovation roles.
- DEC (Decision Speed): Quick vs deliberate. Higher for fast-paced environments.
- MOT (Motivation): Drive and ambition. Important for growth roles.
- COG (Cognitive Ability): Problem-solving. Higher for technical, analytical roles.

Weight guidelines:
- 0.5 = Low importance
- 1.0 = Normal importance
- 1.5 = High importance
- 2.0 = Critical requirement

Set min/max to define the ideal range. Score outside this range penalizes the match.`

// generatedRole es el JSON que esperamos del LLM.
type generatedRole struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Culture          string `json:"culture"`
	MinimumCognitive int    `json:"minimumCognitive"`
	Traits           map[string]struct {
		Weight float64 `json:"weight"`
		Min    int     `json:"min"`
		Max    int     `json:"max"`
	} `json:"traits"`
}

// Generate pide al LLM un borrador de rol para la descripcion dada y lo
// convierte al formato de RoleInput. No persiste nada.
func (g *RoleGenerator) Generate(ctx context.Context, description string) (RoleInput, error) {
	if g == nil || g.llmClient == nil {
		return RoleInput{}, ErrGeneratorNotConfigured
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return RoleInput{}, ErrInvalidRole
	}

	raw, err := g.llmClient.Generate(ctx, roleGeneratorSystemPrompt,
		"Generate role requirements for: "+description)
	if err != nil {
		return RoleInput{}, fmt.Errorf("llm generate: %w", err)
	}

	cleaned := firstJSONObject(sanitizeLLMJSON(raw))
	if cleaned == "" {
		return RoleInput{}, fmt.Errorf("no JSON object in llm output")
	}

	var parsed generatedRole
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return RoleInput{}, fmt.Errorf("parse llm output: %w", err)
	}
	if strings.TrimSpace(parsed.Title) == "" {
		return RoleInput{}, fmt.Errorf("llm output missing title")
	}

	input := RoleInput{
		Title:             parsed.Title,
		Description:       parsed.Description,
		TraitWeights:      make(map[string]float64),
		IdealRanges:       make(map[string]domain.TraitRange),
		CulturePreference: parsed.Culture,
		MinimumCognitive:  parsed.MinimumCognitive,
		IsAIGenerated:     true,
	}
	for trait, req := range parsed.Traits {
		trait = strings.ToUpper(strings.TrimSpace(trait))
		if _, ok := (domain.TraitScores{}).Get(trait); !ok {
			if g.logger != nil {
				g.logger.Warn("llm proposed unknown trait, skipping", zap.String("trait", trait))
			}
			continue
		}
		input.TraitWeights[trait] = req.Weight
		input.IdealRanges[trait] = domain.TraitRange{Min: req.Min, Max: req.Max}
	}
	return input, nil
}
