package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"amara-match/internal/catalog"
)

// QuestionHandler expone el banco de preguntas.
type QuestionHandler struct {
	cat *catalog.Catalog
}

// NewQuestionHandler crea una instancia de QuestionHandler.
func NewQuestionHandler(cat *catalog.Catalog) *QuestionHandler {
	return &QuestionHandler{cat: cat}
}

// ListQuestions maneja GET /questions y devuelve el cuestionario completo en orden.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Questions())
}
