package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/service"
)

// CategoryHandler provides HTTP handlers for the weight-category registry.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/timbre-categories requests.
//
// @Summary      List weight categories
// @Description  Returns the registry of weight brackets ordered by type then lower bound.
// @Tags         Categories
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Weight categories"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbre-categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(categories)
}

// Create handles POST /api/timbre-categories requests.
//
// @Summary      Create a weight category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        request body dto.WeightCategoryRequest true "Category definition"
// @Success      201 {object} dto.SuccessResponse "Created category"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbre-categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.WeightCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessCreated(category)
}

// Update handles PUT /api/timbre-categories/:id requests.
//
// @Summary      Update a weight category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        request body dto.WeightCategoryRequest true "Category definition"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbre-categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.WeightCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	changes, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Delete handles DELETE /api/timbre-categories/:id requests.
//
// @Summary      Delete a weight category
// @Description  Fails with a category_in_use conflict while stamps still reference the category by name.
// @Tags         Categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Failure      409 {object} dto.ErrorResponse "Category still referenced by stamps"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbre-categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}
