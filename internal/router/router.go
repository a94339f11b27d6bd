package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "molpredict/docs"
	"molpredict/internal/handler"
	"molpredict/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	predictionH *handler.PredictionHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// API information and probes
	r.GET("/", handler.Index)
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/predict", predictionH.Predict)
	v1.POST("/batch_predict", predictionH.PredictBatch)
	v1.GET("/health", statsH.GetHealth)
	v1.GET("/stats", statsH.GetStats)
	v1.GET("/models", statsH.GetModels)

	r.NoRoute(handler.NotFound)

	return r
}
