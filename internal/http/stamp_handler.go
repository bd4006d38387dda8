package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/metrics"
	"github.com/expedibox/colis-service/internal/service"
)

// StampHandler provides HTTP handlers for the stamp pool routes.
type StampHandler struct {
	pool service.StampPool
}

// NewStampHandler creates a new StampHandler instance.
func NewStampHandler(pool service.StampPool) *StampHandler {
	return &StampHandler{pool: pool}
}

// ListGrouped handles GET /api/timbres requests.
//
// @Summary      List stamps grouped by weight category
// @Description  Returns every stamp grouped under its weight category, including orphan groups for stamps whose category was deleted or renamed. Each group carries available and used counts.
// @Tags         Timbres
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stamp groups"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres [get]
func (h *StampHandler) ListGrouped(c *gin.Context) {
	builder := NewResponseBuilder(c)

	groups, err := h.pool.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(groups)
}

// Import handles POST /api/timbres/import requests.
//
// @Summary      Bulk import stamps
// @Description  Imports a batch of prepaid stamps under a weight bracket. Tracking numbers already present are skipped silently; the response reports how many rows were actually inserted.
// @Tags         Timbres
// @Accept       json
// @Produce      json
// @Param        request body dto.ImportStampsRequest true "Stamps to import"
// @Success      201 {object} dto.SuccessResponse "Import result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/import [post]
func (h *StampHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ImportStampsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	inserted, total, err := h.pool.ImportBulk(c.Request.Context(), req)
	if err != nil {
		respondError(builder, err)
		return
	}

	metrics.RecordStampImport(inserted, total-inserted)
	builder.SuccessCreated(dto.ImportStampsResponse{Inserted: inserted, Total: total})
}

// FindAvailable handles GET /api/timbres/disponible/:poids requests.
//
// @Summary      Find an available stamp for a weight
// @Description  Returns the cheapest available stamp whose bracket contains the given weight in kilograms, or null when none fits. The stamp is not reserved; binding happens on parcel save.
// @Tags         Timbres
// @Produce      json
// @Param        poids path number true "Parcel weight in kilograms"
// @Success      200 {object} dto.SuccessResponse "Matching stamp or null"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid weight"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/disponible/{poids} [get]
func (h *StampHandler) FindAvailable(c *gin.Context) {
	builder := NewResponseBuilder(c)

	poids, err := strconv.ParseFloat(c.Param("poids"), 64)
	if err != nil || poids < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	stamp, err := h.pool.FindAvailableForWeight(c.Request.Context(), poids)
	if err != nil {
		respondError(builder, err)
		return
	}

	metrics.RecordStampLookup(stamp != nil)
	builder.SuccessOK(stamp)
}

// Bind handles PUT /api/timbres/:id/utiliser requests.
//
// @Summary      Bind a stamp to a parcel
// @Description  Marks the stamp used and attaches it to the given parcel. Binding an already-used stamp is accepted; the caller owns that decision.
// @Tags         Timbres
// @Accept       json
// @Produce      json
// @Param        id path int true "Stamp ID"
// @Param        request body dto.BindStampRequest true "Target parcel"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Stamp not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/{id}/utiliser [put]
func (h *StampHandler) Bind(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.BindStampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(builder, err)
		return
	}

	changes, err := h.pool.Bind(c.Request.Context(), id, req.ColisID)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Release handles PUT /api/timbres/:id/liberer requests.
//
// @Summary      Release a stamp
// @Description  Marks the stamp available again and detaches it from its parcel.
// @Tags         Timbres
// @Produce      json
// @Param        id path int true "Stamp ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Stamp not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/{id}/liberer [put]
func (h *StampHandler) Release(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.pool.Release(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Toggle handles PUT /api/timbres/:id/toggle requests.
//
// @Summary      Toggle a stamp's used flag
// @Description  Flips the used flag and always clears the parcel link, whichever direction the flip goes.
// @Tags         Timbres
// @Produce      json
// @Param        id path int true "Stamp ID"
// @Success      200 {object} dto.SuccessResponse "New state"
// @Failure      404 {object} dto.ErrorResponse "Stamp not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/{id}/toggle [put]
func (h *StampHandler) Toggle(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	utilise, changes, err := h.pool.Toggle(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.ToggleStampResponse{Utilise: utilise, Changes: changes})
}

// Delete handles DELETE /api/timbres/:id requests.
//
// @Summary      Delete a stamp
// @Tags         Timbres
// @Produce      json
// @Param        id path int true "Stamp ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Stamp not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/{id} [delete]
func (h *StampHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.pool.DeleteOne(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// DeleteAvailableByCategory handles DELETE /api/timbres/categorie/:nom requests.
//
// @Summary      Purge available stamps of a category
// @Description  Deletes every unused stamp of the named category. Used stamps are kept; they document past shipments.
// @Tags         Timbres
// @Produce      json
// @Param        nom path string true "Category name"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/timbres/categorie/{nom} [delete]
func (h *StampHandler) DeleteAvailableByCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	changes, err := h.pool.DeleteAvailableInCategory(c.Request.Context(), c.Param("nom"))
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}
