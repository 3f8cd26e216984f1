package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-processing-api/internal/config"
	"user-processing-api/internal/handlers"
	"user-processing-api/pkg/server"
)

// @title User Processing API
// @version 1.0
// @description A demo API that validates and echoes user identities
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@user-processing-api.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handlers.SetupMiddleware(router, cfg, container.Logger)
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		UserService: container.UserService,
		Logger:      container.Logger,
	})

	if cfg.Environment == "development" {
		handlers.SetupDevelopmentRoutes(router, cfg)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	container.Logger.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		container.Logger.Fatalf("Server forced to shutdown: %v", err)
	}

	container.Logger.Info("Server exited")
}
