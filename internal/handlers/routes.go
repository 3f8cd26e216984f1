package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"user-processing-api/internal/config"
	"user-processing-api/internal/middleware"
	"user-processing-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	UserService services.UserService
	Logger      *logrus.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, routerConfig *RouterConfig) {
	userHandler := NewUserHandler(routerConfig.UserService, routerConfig.Logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "user-processing-api",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/process", userHandler.ProcessUser)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config, logger *logrus.Logger) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request size limit
	router.Use(middleware.RequestSizeLimit(cfg.Server.MaxRequestSize))

	// Content type validation for requests carrying a body
	router.Use(middleware.ContentTypeValidation("application/json"))

	// Rate limiting
	router.Use(middleware.RateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, logger))

	// Structured logging
	router.Use(middleware.StructuredLogger(logger))

	// Performance monitoring for slow requests
	router.Use(middleware.PerformanceMonitor(cfg.Server.SlowRequestLimit, logger))
}

// SetupDevelopmentRoutes adds development-only routes
func SetupDevelopmentRoutes(router *gin.Engine, cfg *config.Config) {
	dev := router.Group("/dev")
	{
		// Configuration info
		dev.GET("/config", func(c *gin.Context) {
			serverless := config.GetServerlessConfig()
			c.JSON(200, gin.H{
				"environment":     cfg.Environment,
				"deployment_mode": config.GetDeploymentMode(),
				"stage":           serverless.Stage,
				"log_level":       cfg.Log.Level,
				"log_format":      cfg.Log.Format,
				"api_version":     "1.0.0",
				"swagger_url":     "/swagger/index.html",
			})
		})
	}
}
