package api

import (
	"github.com/gin-gonic/gin"
	"github.com/tonicworks/chordbase-api/internal/api/handlers"
	apimiddleware "github.com/tonicworks/chordbase-api/internal/api/middleware"
	"github.com/tonicworks/chordbase-api/internal/config"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/services"
)

func SetupRouter(
	collection *models.Collection,
	analyzer *services.Analyzer,
	engine *services.QueryEngine,
	metricsClient *metrics.Client,
	cfg *config.Config,
	version string,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(collection)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, collection)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}
	{
		browseHandler := handlers.NewBrowseHandler(engine, metricsClient)
		v1.GET("/progressions", browseHandler.Browse)

		analyzeHandler := handlers.NewAnalyzeHandler(engine, metricsClient)
		v1.GET("/progressions/:id/analysis", analyzeHandler.Analyze)

		generateHandler := handlers.NewGenerateHandler(engine, analyzer, metricsClient)
		v1.POST("/generations", generateHandler.Generate)

		statsHandler := handlers.NewStatsHandler(engine, metricsClient)
		v1.GET("/stats", statsHandler.Stats)
	}

	return router
}
