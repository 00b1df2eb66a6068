package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"amara-match/internal/domain"
	"amara-match/internal/repository"
	"amara-match/internal/service"
)

// AssessmentHandler mantiene dependencias para endpoints de evaluaciones y candidatos.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
	repo        repository.AssessmentRepository
	overview    *service.OverviewService
}

// NewAssessmentHandler crea una instancia de AssessmentHandler con dependencias necesarias.
func NewAssessmentHandler(
	logger *zap.Logger,
	assessments *service.AssessmentService,
	repo repository.AssessmentRepository,
	overview *service.OverviewService,
) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		assessments: assessments,
		repo:        repo,
		overview:    overview,
	}
}

// SubmitAssessment maneja POST /assessments: recibe la lista de respuestas y
// devuelve el resultado completo de la evaluacion.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var req struct {
		Responses []domain.Response `json:"responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: responses array required"})
		return
	}

	result, err := h.assessments.Evaluate(c.Request.Context(), req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrNoResponses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: responses array required"})
			return
		}
		h.logger.Error("evaluate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process assessment"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCandidates maneja GET /candidates y devuelve los resultados almacenados,
// el mas reciente primero.
func (h *AssessmentHandler) ListCandidates(c *gin.Context) {
	results, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list candidates failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch candidates"})
		return
	}
	if results == nil {
		results = []domain.AssessmentResult{}
	}
	c.JSON(http.StatusOK, results)
}

// ListSimilarCandidates maneja GET /candidates/:id/similar usando busqueda por
// cercania del vector de rasgos.
func (h *AssessmentHandler) ListSimilarCandidates(c *gin.Context) {
	id := c.Param("id")

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	candidate, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
			return
		}
		h.logger.Error("get candidate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch candidate"})
		return
	}

	similar, err := h.repo.FindSimilar(c.Request.Context(),
		pgvector.NewVector(candidate.Traits.Vector()), limit, candidate.ID)
	if err != nil {
		h.logger.Error("similar search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search similar candidates"})
		return
	}
	if similar == nil {
		similar = []domain.AssessmentResult{}
	}
	c.JSON(http.StatusOK, similar)
}

// GenerateOverview maneja POST /ai-overview. La generacion es best effort: si
// el LLM no esta configurado o falla, responde 200 con overview nulo para que
// el cliente degrade sin error.
func (h *AssessmentHandler) GenerateOverview(c *gin.Context) {
	var result domain.AssessmentResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment payload"})
		return
	}

	text, err := h.overview.Overview(c.Request.Context(), result)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"overview": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": text})
}
