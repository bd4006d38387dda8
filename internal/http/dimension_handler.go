package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/service"
)

// DimensionHandler provides HTTP handlers for carton dimension routes.
type DimensionHandler struct {
	dimensions service.DimensionService
}

// NewDimensionHandler creates a new DimensionHandler instance.
func NewDimensionHandler(dimensions service.DimensionService) *DimensionHandler {
	return &DimensionHandler{dimensions: dimensions}
}

// List handles GET /api/dimensions requests.
//
// @Summary      List carton dimensions
// @Tags         Dimensions
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Carton dimensions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dimensions [get]
func (h *DimensionHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dimensions, err := h.dimensions.List(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dimensions)
}

// Create handles POST /api/dimensions requests.
//
// @Summary      Create a carton dimension
// @Tags         Dimensions
// @Accept       json
// @Produce      json
// @Param        request body dto.DimensionRequest true "Dimension definition"
// @Success      201 {object} dto.SuccessResponse "Created dimension ID"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dimensions [post]
func (h *DimensionHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.DimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	id, err := h.dimensions.Create(c.Request.Context(), req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"id": id})
}

// Update handles PUT /api/dimensions/:id requests.
//
// @Summary      Update a carton dimension
// @Tags         Dimensions
// @Accept       json
// @Produce      json
// @Param        id path int true "Dimension ID"
// @Param        request body dto.DimensionRequest true "Dimension definition"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Dimension not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dimensions/{id} [put]
func (h *DimensionHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.DimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	changes, err := h.dimensions.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Delete handles DELETE /api/dimensions/:id requests.
//
// @Summary      Delete a carton dimension
// @Tags         Dimensions
// @Produce      json
// @Param        id path int true "Dimension ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Dimension not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dimensions/{id} [delete]
func (h *DimensionHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.dimensions.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}
