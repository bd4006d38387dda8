package http

import (
	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/service"
)

// CatalogRoutes handles client, product, dimension and stats route registration.
type CatalogRoutes struct {
	clients    *ClientHandler
	products   *ProductHandler
	dimensions *DimensionHandler
	stats      *StatsHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(
	clients service.ClientService,
	products service.ProductService,
	dimensions service.DimensionService,
	stats service.StatsService,
) *CatalogRoutes {
	return &CatalogRoutes{
		clients:    NewClientHandler(clients),
		products:   NewProductHandler(products),
		dimensions: NewDimensionHandler(dimensions),
		stats:      NewStatsHandler(stats),
	}
}

// RegisterRoutes registers catalog routes on the API group.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", r.clients.List)
		clients.GET("/:id", r.clients.Get)
		clients.POST("", r.clients.Create)
		clients.PUT("/:id", r.clients.Update)
		clients.DELETE("/:id", r.clients.Delete)
	}

	produits := rg.Group("/produits")
	{
		produits.GET("", r.products.List)
		produits.GET("/:id", r.products.Get)
		produits.POST("", r.products.Create)
		produits.PUT("/:id", r.products.Update)
		produits.DELETE("/:id", r.products.Delete)
	}

	dimensions := rg.Group("/dimensions")
	{
		dimensions.GET("", r.dimensions.List)
		dimensions.POST("", r.dimensions.Create)
		dimensions.PUT("/:id", r.dimensions.Update)
		dimensions.DELETE("/:id", r.dimensions.Delete)
	}

	rg.GET("/stats", r.stats.Overview)
}
