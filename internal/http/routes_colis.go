package http

import (
	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/service"
)

// ParcelRoutes handles parcel route registration.
type ParcelRoutes struct {
	handler *ParcelHandler
}

// NewParcelRoutes creates a new ParcelRoutes instance.
func NewParcelRoutes(parcels service.ParcelService) *ParcelRoutes {
	return &ParcelRoutes{handler: NewParcelHandler(parcels)}
}

// RegisterRoutes registers parcel routes on the API group.
func (r *ParcelRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	colis := rg.Group("/colis")
	{
		colis.GET("", r.handler.List)
		colis.GET("/:id", r.handler.Get)
		colis.POST("", r.handler.Create)
		colis.PUT("/:id", r.handler.Update)
		colis.DELETE("/:id", r.handler.Delete)
		colis.POST("/check-duplicate-link", r.handler.CheckDuplicateLink)
	}
}
