package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"amara-match/internal/domain"
	"amara-match/internal/repository"
)

// ErrInvalidRole indica un rol personalizado sin los campos minimos.
var ErrInvalidRole = errors.New("invalid role definition")

// RoleService administra roles personalizados de reclutadores y los cruza con
// candidatos ya evaluados usando la estrategia de roles personalizados.
type RoleService struct {
	roles       repository.RoleRepository
	assessments repository.AssessmentRepository
	matcher     RoleMatcher
	logger      *zap.Logger
}

func NewRoleService(
	roles repository.RoleRepository,
	assessments repository.AssessmentRepository,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{
		roles:       roles,
		assessments: assessments,
		logger:      logger,
	}
}

// RoleInput es la definicion de rol que llega desde el reclutador (o desde el
// generador asistido). La capa externa ya valido tipos; aca solo se exige lo
// minimo para poder matchear.
type RoleInput struct {
	Title             string                       `json:"title"`
	Description       string                       `json:"description,omitempty"`
	TraitWeights      map[string]float64           `json:"traitWeights"`
	IdealRanges       map[string]domain.TraitRange `json:"idealRanges"`
	CulturePreference string                       `json:"culturePreference,omitempty"`
	MinimumCognitive  int                          `json:"minimumCognitive"`
	IsAIGenerated     bool                         `json:"isAiGenerated"`
}

// Create registra un rol nuevo con id y fecha de creacion propios.
func (s *RoleService) Create(ctx context.Context, input RoleInput) (domain.CustomRole, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.CustomRole{}, ErrInvalidRole
	}

	role := domain.CustomRole{
		ID:                uuid.NewString(),
		Title:             strings.TrimSpace(input.Title),
		Description:       strings.TrimSpace(input.Description),
		TraitWeights:      input.TraitWeights,
		IdealRanges:       input.IdealRanges,
		CulturePreference: input.CulturePreference,
		MinimumCognitive:  input.MinimumCognitive,
		IsAIGenerated:     input.IsAIGenerated,
		CreatedAt:         time.Now().UTC(),
	}
	if role.TraitWeights == nil {
		role.TraitWeights = map[string]float64{}
	}
	if role.IdealRanges == nil {
		role.IdealRanges = map[string]domain.TraitRange{}
	}

	if err := s.roles.Create(ctx, role); err != nil {
		return domain.CustomRole{}, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// List devuelve los roles personalizados, el mas reciente primero.
func (s *RoleService) List(ctx context.Context) ([]domain.CustomRole, error) {
	return s.roles.List(ctx)
}

// MatchCandidates evalua a todos los candidatos almacenados contra un rol y
// devuelve los matches ordenados de mayor a menor fit. El resultado es
// efimero: se recalcula en cada consulta, nunca se persiste.
func (s *RoleService) MatchCandidates(ctx context.Context, roleID string) ([]domain.CandidateMatch, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	matches := make([]domain.CandidateMatch, 0, len(candidates))
	for _, candidate := range candidates {
		profile := CandidateProfile{
			Traits: candidate.Traits,
			Values: candidate.WorkValues,
			Style:  candidate.WorkStyle,
		}
		fit := s.matcher.MatchCustom(profile, role)
		matches = append(matches, domain.CandidateMatch{
			CandidateID:     candidate.ID,
			RoleID:          role.ID,
			FitScore:        fit.FitPercentage,
			BehavioralScore: s.matcher.BehavioralScore(candidate.Traits),
			Rating:          fit.Rating,
			RatingColor:     fit.RatingColor,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FitScore > matches[j].FitScore
	})
	return matches, nil
}
