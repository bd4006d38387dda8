package http

import (
	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/service"
)

// StampRoutes handles stamp pool and weight-category route registration.
type StampRoutes struct {
	stamps     *StampHandler
	categories *CategoryHandler
}

// NewStampRoutes creates a new StampRoutes instance.
func NewStampRoutes(pool service.StampPool, categories service.CategoryService) *StampRoutes {
	return &StampRoutes{
		stamps:     NewStampHandler(pool),
		categories: NewCategoryHandler(categories),
	}
}

// RegisterRoutes registers stamp and category routes on the API group.
func (r *StampRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	timbres := rg.Group("/timbres")
	{
		timbres.GET("", r.stamps.ListGrouped)
		timbres.POST("/import", r.stamps.Import)
		timbres.GET("/disponible/:poids", r.stamps.FindAvailable)
		timbres.PUT("/:id/utiliser", r.stamps.Bind)
		timbres.PUT("/:id/liberer", r.stamps.Release)
		timbres.PUT("/:id/toggle", r.stamps.Toggle)
		timbres.DELETE("/:id", r.stamps.Delete)
		timbres.DELETE("/categorie/:nom", r.stamps.DeleteAvailableByCategory)
	}

	categories := rg.Group("/timbre-categories")
	{
		categories.GET("", r.categories.List)
		categories.POST("", r.categories.Create)
		categories.PUT("/:id", r.categories.Update)
		categories.DELETE("/:id", r.categories.Delete)
	}
}
