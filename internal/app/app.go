// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/config"
	"github.com/expedibox/colis-service/internal/http"
	"github.com/expedibox/colis-service/internal/repository"
)

// Application bundles the router with the resources it owns.
type Application struct {
	Router *gin.Engine
	Store  *repository.Store
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*Application, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Open the embedded database, run migrations and optional seeding
	store, err := InitializeDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize business services over the store
	services := InitializeServices(store)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(store, services, cfg)

	router := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)

	return &Application{Router: router, Store: store}, nil
}

// Close releases application resources.
func (a *Application) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
