package http

import (
	"github.com/gin-gonic/gin"

	"github.com/expedibox/colis-service/internal/service"
)

// StatsHandler provides the dashboard counters endpoint.
type StatsHandler struct {
	stats service.StatsService
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /api/stats requests.
//
// @Summary      Dashboard counters
// @Description  Returns client, product and parcel counts, with parcels broken down by status.
// @Tags         Stats
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Counters"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/stats [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(stats)
}
