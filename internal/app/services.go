// Package app provides service initialization.
package app

import (
	"github.com/expedibox/colis-service/internal/repository"
	"github.com/expedibox/colis-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	StampPool        service.StampPool
	CategoryService  service.CategoryService
	ParcelService    service.ParcelService
	ClientService    service.ClientService
	ProductService   service.ProductService
	DimensionService service.DimensionService
	StatsService     service.StatsService
}

// InitializeServices wires the business services over the store.
func InitializeServices(store *repository.Store) *ServiceComponents {
	db := store.DB()

	stamps := repository.NewStampRepository(db)
	categories := repository.NewCategoryRepository(db)
	products := repository.NewProductRepository(db)
	clients := repository.NewClientRepository(db)
	dimensions := repository.NewDimensionRepository(db)
	stats := repository.NewStatsRepository(db)

	return &ServiceComponents{
		StampPool:        service.NewStampPool(stamps, categories),
		CategoryService:  service.NewCategoryService(categories, stamps),
		ParcelService:    service.NewParcelService(store),
		ClientService:    service.NewClientService(clients),
		ProductService:   service.NewProductService(products),
		DimensionService: service.NewDimensionService(dimensions),
		StatsService:     service.NewStatsService(stats),
	}
}
