package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/lecture-api/api/health"
	"github.com/killallgit/lecture-api/api/lectures"
	"github.com/killallgit/lecture-api/api/translate"
	"github.com/killallgit/lecture-api/api/types"
	"github.com/killallgit/lecture-api/api/version"
	_ "github.com/killallgit/lecture-api/docs/swagger"
	lectureService "github.com/killallgit/lecture-api/internal/services/lectures"
	"github.com/killallgit/lecture-api/internal/services/summarizer"
	"github.com/killallgit/lecture-api/internal/services/translator"
	"github.com/killallgit/lecture-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Translator == nil {
		deps.Translator = translator.NewClient(translator.Config{
			APIKey:        cfg.Groq.APIKey,
			BaseURL:       cfg.Groq.BaseURL,
			Model:         cfg.Groq.TranslationModel,
			Timeout:       cfg.Groq.Timeout,
			RetryAttempts: cfg.Groq.RetryAttempts,
			RetryDelay:    cfg.Groq.RetryDelay,
		})
	}
	if deps.Summarizer == nil {
		deps.Summarizer = summarizer.NewClient(summarizer.Config{
			APIKey:           cfg.Groq.APIKey,
			BaseURL:          cfg.Groq.BaseURL,
			TitleModel:       cfg.Groq.TitleModel,
			EnhancementModel: cfg.Groq.EnhancementModel,
			Timeout:          cfg.Groq.Timeout,
			RetryAttempts:    cfg.Groq.RetryAttempts,
			RetryDelay:       cfg.Groq.RetryDelay,
		})
	}
	if deps.MinAudioBytes == 0 {
		deps.MinAudioBytes = cfg.Upload.MinAudioBytes
	}

	if deps.LectureService == nil && deps.DB != nil && deps.DB.DB != nil {
		repository := lectureService.NewRepository(deps.DB.DB)
		deps.LectureService = lectureService.NewService(repository, deps.Translator, deps.Summarizer)
	}

	// Register lecture routes with general rate limiting (10 req/s, burst of 20)
	lectureGroup := v1.Group("/lectures")
	lectureGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	lectures.RegisterRoutes(lectureGroup, deps)

	// Register translation routes with moderate rate limiting (5 req/s, burst
	// of 10); chunk uploads arrive every few seconds per client
	translateGroup := v1.Group("/translate")
	translateGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	translate.RegisterRoutes(translateGroup, deps)

	return nil
}
