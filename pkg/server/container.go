package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"user-processing-api/internal/config"
	"user-processing-api/internal/logger"
	"user-processing-api/internal/services"
)

// Container holds the application services and their shared dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	UserService services.UserService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	log := logger.New(cfg)

	return &Container{
		Config:      cfg,
		Logger:      log,
		UserService: services.NewUserService(log),
	}, nil
}

// Close cleans up all resources held by the container
func (c *Container) Close() error {
	// No pooled resources yet; kept so both deployment modes can manage
	// the container lifecycle the same way.
	return nil
}
