package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/i18n"
	"github.com/expedibox/colis-service/internal/service"
)

// ClientHandler provides HTTP handlers for client routes.
type ClientHandler struct {
	clients service.ClientService
}

// NewClientHandler creates a new ClientHandler instance.
func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients requests.
//
// @Summary      List clients
// @Tags         Clients
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Clients"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(clients)
}

// Get handles GET /api/clients/:id requests.
//
// @Summary      Get a client
// @Tags         Clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} dto.SuccessResponse "Client"
// @Failure      404 {object} dto.ErrorResponse "Client not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(client)
}

// Create handles POST /api/clients requests.
//
// @Summary      Create a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        request body dto.ClientRequest true "Client definition"
// @Success      201 {object} dto.SuccessResponse "Created client ID"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	id, err := h.clients.Create(c.Request.Context(), req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"id": id})
}

// Update handles PUT /api/clients/:id requests.
//
// @Summary      Update a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        id path int true "Client ID"
// @Param        request body dto.ClientRequest true "Client definition"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Client not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	changes, err := h.clients.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}

// Delete handles DELETE /api/clients/:id requests.
//
// @Summary      Delete a client
// @Tags         Clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} dto.SuccessResponse "Rows changed"
// @Failure      404 {object} dto.ErrorResponse "Client not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	changes, err := h.clients.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.MutationResponse{Changes: changes})
}
