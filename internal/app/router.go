// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/expedibox/colis-service/config"
	"github.com/expedibox/colis-service/internal/http"
	"github.com/expedibox/colis-service/internal/repository"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(store *repository.Store, services *ServiceComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("database", http.HealthCheckerFunc(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return store.Ping(ctx)
	}))

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,

		StampPool:        services.StampPool,
		CategoryService:  services.CategoryService,
		ParcelService:    services.ParcelService,
		ClientService:    services.ClientService,
		ProductService:   services.ProductService,
		DimensionService: services.DimensionService,
		StatsService:     services.StatsService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
