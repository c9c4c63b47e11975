package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/boards/:id/stats", h.GetStatistics)
}

// GetStatistics godoc
// @Summary      Board statistics
// @Description  Per-habit progress and streaks, per-day and per-week completion, overall percentage, best and worst day.
// @Tags         stats
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  domain.Statistics
// @Failure      404  {object}  errorResponse
// @Router       /boards/{id}/stats [get]
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.svc.GetStatistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
