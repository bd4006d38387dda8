package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/service"
)

// ProductHandler provides HTTP handlers for product catalog routes.
// Stock on these routes is an absolute value; the reconciliation
// service owns relative stock movements.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/produits requests.
//
// @Summary      List products
// @Tags         Produits
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/produits [get]
func (h *ProductHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(products)
}

// Get handles GET /api/produits/:id requests.
//
// @Summary      Get a product
// @Tags         Produits
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/produits/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(product)
}

// Create handles POST /api/produits requests.
//
// @Summary      Create a product
// @Tags         Produits
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductRequest true "Product definition"
// @Success      201 {object} dto.SuccessResponse "Created product ID"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/produits [post]
func (h *ProductHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	id, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"id": id})
}

// Update handles PUT /api/produits/:id requests.
//
// @Summary      Update a product
// @Tags         Produits
// @Accept       json
// @Produce      json
// @Param        id path int true "Product ID"
// @Param        request body dto.ProductRequest true "Product definition"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/produits/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	changes, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Delete handles DELETE /api/produits/:id requests.
//
// @Summary      Delete a product
// @Tags         Produits
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/produits/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}
