package lambda

import (
	"context"
	"sync"
	"time"

	"user-processing-api/internal/config"
	"user-processing-api/pkg/server"
)

// ContainerManager keeps the service container alive across Lambda
// invocations so warm starts skip configuration and wiring.
type ContainerManager struct {
	container   *server.Container
	config      *config.Config
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
}

var (
	globalContainerManager *ContainerManager
	containerManagerOnce   sync.Once
)

// GetContainerManager returns the global container manager instance
func GetContainerManager() *ContainerManager {
	containerManagerOnce.Do(func() {
		globalContainerManager = &ContainerManager{}
	})
	return globalContainerManager
}

// Initialize builds the container from configuration. Calling it again
// while a container is live is a no-op; after Cleanup it rebuilds.
func (cm *ContainerManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized && cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		container := cm.container
		cm.mu.RUnlock()
		return container, nil
	}
	cm.mu.RUnlock()

	// Need to initialize
	cfg := cm.currentConfig()
	if cfg == nil {
		loaded, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy checks if the container manager is healthy
func (cm *ContainerManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}

	// Treat a container idle for more than 5 minutes as stale
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup releases the container so the next invocation rebuilds it
func (cm *ContainerManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}

// UpdateLastUsed updates the last used timestamp
func (cm *ContainerManager) UpdateLastUsed() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
}

func (cm *ContainerManager) currentConfig() *config.Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}
