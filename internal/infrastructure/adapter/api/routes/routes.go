package routes

import (
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	durationHandler *handler.DurationHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	durationRoutes := router.Group("/durations")
	{
		durationRoutes.POST("/normalize", durationHandler.Normalize)
		durationRoutes.POST("/combine", durationHandler.Combine)
		durationRoutes.POST("/apply/time", durationHandler.ApplyToTime)
		durationRoutes.POST("/apply/date", durationHandler.ApplyToDate)
		durationRoutes.POST("/composite", durationHandler.Composite)

		saved := durationRoutes.Group("/saved")
		saved.POST("", durationHandler.Save)
		saved.GET("", durationHandler.List)
		saved.GET("/:id", durationHandler.Get)
		saved.DELETE("/:id", durationHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
