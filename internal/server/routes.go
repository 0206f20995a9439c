package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voicesmith/internal/config"
	"voicesmith/internal/handlers"
	"voicesmith/pkg/Logger"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Logger      *Logger.Logger
	Configs     *config.Settings
	Voice       *handlers.VoiceHandler
	Cloning     *handlers.CloningHandler
	Generations *handlers.GenerationHandler
	Capture     *handlers.CaptureHandler
}

func NewServerDependencies(
	logger *Logger.Logger,
	cfg *config.Settings,
	voiceHandler *handlers.VoiceHandler,
	cloningHandler *handlers.CloningHandler,
	generationHandler *handlers.GenerationHandler,
	captureHandler *handlers.CaptureHandler,
) Dependencies {
	return Dependencies{
		Logger:      logger,
		Configs:     cfg,
		Voice:       voiceHandler,
		Cloning:     cloningHandler,
		Generations: generationHandler,
		Capture:     captureHandler,
	}
}

func InitializeRoutes(cfg *config.Settings, r *gin.Engine, dep Dependencies) {
	r.Use(handlers.RequestLoggerMiddleware(dep.Logger))
	r.Use(handlers.ErrorHandlerMiddleware(dep.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"message": "Server healthy"}) })
	r.GET("/health", healthCheck)
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		voices := api.Group("/voices")
		{
			voices.POST("", dep.Voice.CreateVoice)
			voices.GET("", dep.Voice.ListVoices)
			voices.GET("/search", dep.Voice.SearchVoices)
			voices.GET("/:id", dep.Voice.GetVoice)
			voices.PATCH("/:id", dep.Voice.UpdateVoice)
			voices.DELETE("/:id", dep.Voice.DeleteVoice)
		}

		cloning := api.Group("/cloning")
		{
			cloning.POST("/clone", dep.Cloning.CloneVoice)
			cloning.GET("/voices", dep.Cloning.VendorVoices)
			cloning.DELETE("/voices/:id", dep.Cloning.DeleteVoice)
			cloning.POST("/voices/:id/synthesize", dep.Cloning.Synthesize)
			cloning.GET("/usage", dep.Cloning.Usage)
			cloning.GET("/models", dep.Cloning.Models)
		}

		api.GET("/generations", dep.Generations.ListGenerations)
	}

	dep.Capture.RegisterRoutes(r)
}

// healthCheck reports service liveness
// @Summary Health check
// @Description Report service liveness
// @Tags System
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, handlers.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
