package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/metrics"
	"github.com/expedibox/colis-service/internal/service"
)

// ParcelHandler provides HTTP handlers for parcel routes. Create, update
// and delete run through the reconciliation service; a response may carry
// negative-stock warnings without failing the write.
type ParcelHandler struct {
	parcels service.ParcelService
}

// NewParcelHandler creates a new ParcelHandler instance.
func NewParcelHandler(parcels service.ParcelService) *ParcelHandler {
	return &ParcelHandler{parcels: parcels}
}

// List handles GET /api/colis requests.
//
// @Summary      List parcels
// @Description  Returns every parcel with its client identity, newest first.
// @Tags         Colis
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Parcels"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis [get]
func (h *ParcelHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	parcels, err := h.parcels.List(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(parcels)
}

// Get handles GET /api/colis/:id requests.
//
// @Summary      Get a parcel
// @Description  Returns one parcel with its product lines and client identity.
// @Tags         Colis
// @Produce      json
// @Param        id path int true "Parcel ID"
// @Success      200 {object} dto.SuccessResponse "Parcel"
// @Failure      404 {object} dto.ErrorResponse "Parcel not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis/{id} [get]
func (h *ParcelHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	parcel, err := h.parcels.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(parcel)
}

// Create handles POST /api/colis requests.
//
// @Summary      Create a parcel
// @Description  Creates a parcel, reserves stock for each product line and optionally binds a pre-selected stamp, all in one transaction. Stock may go negative; the shortfall comes back as a warning, never an error.
// @Tags         Colis
// @Accept       json
// @Produce      json
// @Param        request body dto.ParcelRequest true "Parcel definition"
// @Success      201 {object} dto.SuccessResponse "Created parcel with warnings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Tracking number already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis [post]
func (h *ParcelHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	start := time.Now()
	result, err := h.parcels.Create(c.Request.Context(), req)
	metrics.RecordReconciliation("create", time.Since(start), err)
	if err != nil {
		respondError(builder, err)
		return
	}

	metrics.RecordNegativeStockWarnings(len(result.ProduitsNegatifs))
	locale := i18n.GetLocale(c)
	builder.SuccessCreated(dto.ParcelMutationResponse{
		ID:               result.ID,
		NumeroSuivi:      result.NumeroSuivi,
		Message:          i18n.GetTranslator().Translate(i18n.MsgKeyParcelCreated, locale),
		ProduitsNegatifs: result.ProduitsNegatifs,
	})
}

// Update handles PUT /api/colis/:id requests.
//
// @Summary      Update a parcel
// @Description  Replaces the parcel's fields and product lines. Stock held by the previous lines is restored before the new lines reserve, so unchanged lines net out to zero.
// @Tags         Colis
// @Accept       json
// @Produce      json
// @Param        id path int true "Parcel ID"
// @Param        request body dto.ParcelRequest true "Parcel definition"
// @Success      200 {object} dto.SuccessResponse "Updated parcel with warnings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Parcel not found"
// @Failure      409 {object} dto.ErrorResponse "Tracking number already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis/{id} [put]
func (h *ParcelHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.ParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	start := time.Now()
	result, err := h.parcels.Update(c.Request.Context(), id, req)
	metrics.RecordReconciliation("update", time.Since(start), err)
	if err != nil {
		respondError(builder, err)
		return
	}

	metrics.RecordNegativeStockWarnings(len(result.ProduitsNegatifs))
	locale := i18n.GetLocale(c)
	builder.SuccessOK(dto.ParcelMutationResponse{
		ID:               result.ID,
		NumeroSuivi:      result.NumeroSuivi,
		Message:          i18n.GetTranslator().Translate(i18n.MsgKeyParcelUpdated, locale),
		ProduitsNegatifs: result.ProduitsNegatifs,
	})
}

// Delete handles DELETE /api/colis/:id requests.
//
// @Summary      Delete a parcel
// @Description  Deletes the parcel, restores stock for its product lines and releases any stamp bound to it, all in one transaction.
// @Tags         Colis
// @Produce      json
// @Param        id path int true "Parcel ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Parcel not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis/{id} [delete]
func (h *ParcelHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	start := time.Now()
	changes, err := h.parcels.Delete(c.Request.Context(), id)
	metrics.RecordReconciliation("delete", time.Since(start), err)
	if err != nil {
		respondError(builder, err)
		return
	}

	locale := i18n.GetLocale(c)
	builder.SuccessOK(dto.MutationResponse{
		Message: i18n.GetTranslator().Translate(i18n.MsgKeyParcelDeleted, locale),
		Changes: changes,
	})
}

// CheckDuplicateLink handles POST /api/colis/check-duplicate-link requests.
//
// @Summary      Check for parcels sharing a product link
// @Description  Returns parcels whose product lines already carry a matching link, excluding the parcel being edited. A match is advisory; the caller decides whether to proceed.
// @Tags         Colis
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckDuplicateLinkRequest true "Link to check"
// @Success      200 {object} dto.SuccessResponse "Duplicate check result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/colis/check-duplicate-link [post]
func (h *ParcelHandler) CheckDuplicateLink(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CheckDuplicateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(builder, err)
		return
	}

	matches, err := h.parcels.CheckDuplicateLink(c.Request.Context(), req.Lien, req.ExcludeColisID)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.DuplicateLinkResponse{Duplicate: len(matches) > 0, Colis: matches})
}
