package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	questionH *QuestionHandler,
	assessmentH *AssessmentHandler,
	roleH *RoleHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/questions", questionH.ListQuestions)

	r.POST("/assessments", assessmentH.SubmitAssessment)
	r.POST("/ai-overview", assessmentH.GenerateOverview)

	candidates := r.Group("/candidates")
	candidates.GET("", assessmentH.ListCandidates)
	candidates.GET("/:id/similar", assessmentH.ListSimilarCandidates)

	roles := r.Group("/roles")
	roles.GET("", roleH.ListRoles)
	roles.POST("", roleH.CreateRole)
	roles.POST("/generate", roleH.GenerateRole)
	roles.GET("/:id/matches", roleH.MatchCandidates)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
