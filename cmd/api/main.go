package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"amara-match/internal/catalog"
	"amara-match/internal/config"
	"amara-match/internal/db"
	apihttp "amara-match/internal/http"
	"amara-match/internal/llm"
	"amara-match/internal/repository"
	"amara-match/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	// Catalogo cargado una sola vez, antes de servir cualquier request.
	cat := catalog.NewDefault()

	assessmentRepo := repository.NewPgAssessmentRepository(pool)
	roleRepo := repository.NewPgRoleRepository(pool)

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("llm not configured, role generation and overviews disabled")
	}

	var generationLimiter service.GenerationRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			generationLimiter = service.NewRedisGenerationRateLimiter(redisClient, 10*time.Minute, 5)
		}
		cancel()
	}

	assessmentSvc := service.NewAssessmentService(cat, assessmentRepo, logger)
	roleSvc := service.NewRoleService(roleRepo, assessmentRepo, logger)
	roleGenerator := service.NewRoleGenerator(llmClient, logger)
	overviewSvc := service.NewOverviewService(llmClient, logger)

	questionHandler := apihttp.NewQuestionHandler(cat)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc, assessmentRepo, overviewSvc)
	roleHandler := apihttp.NewRoleHandler(logger, roleSvc, roleGenerator, generationLimiter)
	router := apihttp.NewRouter(logger, questionHandler, assessmentHandler, roleHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
