package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"amara-match/internal/domain"
	"amara-match/internal/service"
)

// RoleHandler mantiene dependencias para endpoints de roles personalizados.
type RoleHandler struct {
	logger    *zap.Logger
	roles     *service.RoleService
	generator *service.RoleGenerator
	limiter   service.GenerationRateLimiter
}

// NewRoleHandler crea una instancia de RoleHandler con dependencias necesarias.
func NewRoleHandler(
	logger *zap.Logger,
	roles *service.RoleService,
	generator *service.RoleGenerator,
	limiter service.GenerationRateLimiter,
) *RoleHandler {
	return &RoleHandler{
		logger:    logger,
		roles:     roles,
		generator: generator,
		limiter:   limiter,
	}
}

type roleRequest struct {
	Title             string                       `json:"title" binding:"required"`
	Description       string                       `json:"description"`
	TraitWeights      map[string]float64           `json:"traitWeights"`
	IdealRanges       map[string]domain.TraitRange `json:"idealRanges"`
	CulturePreference string                       `json:"culturePreference"`
	MinimumCognitive  int                          `json:"minimumCognitive"`
	IsAIGenerated     bool                         `json:"isAiGenerated"`
}

// CreateRole maneja POST /roles.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create role request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	role, err := h.roles.Create(c.Request.Context(), service.RoleInput{
		Title:             req.Title,
		Description:       req.Description,
		TraitWeights:      req.TraitWeights,
		IdealRanges:       req.IdealRanges,
		CulturePreference: req.CulturePreference,
		MinimumCognitive:  req.MinimumCognitive,
		IsAIGenerated:     req.IsAIGenerated,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role definition"})
			return
		}
		h.logger.Error("create role failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create role"})
		return
	}

	c.JSON(http.StatusCreated, role)
}

// ListRoles maneja GET /roles.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list roles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch roles"})
		return
	}
	if roles == nil {
		roles = []domain.CustomRole{}
	}
	c.JSON(http.StatusOK, roles)
}

// GenerateRole maneja POST /roles/generate. Devuelve un borrador de rol; el
// reclutador lo revisa y lo persiste despues via POST /roles. Sin LLM
// configurado responde 200 con role nulo.
func (h *RoleHandler) GenerateRole(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many generation requests"})
		return
	}

	draft, err := h.generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrGeneratorNotConfigured) {
			c.JSON(http.StatusOK, gin.H{"error": "generator not configured", "role": nil})
			return
		}
		h.logger.Warn("role generation failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"error": "generation failed", "role": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": draft})
}

// MatchCandidates maneja GET /roles/:id/matches y devuelve los candidatos
// evaluados contra el rol, ordenados de mayor a menor fit.
func (h *RoleHandler) MatchCandidates(c *gin.Context) {
	matches, err := h.roles.MatchCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
			return
		}
		h.logger.Error("match candidates failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to match candidates"})
		return
	}
	c.JSON(http.StatusOK, matches)
}
