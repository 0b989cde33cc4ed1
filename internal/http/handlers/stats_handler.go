package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/ats-backend/internal/service"
)

// StatsHandler отдаёт сводку для дашборда.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler создаёт хэндлер.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetDashboardStats обрабатывает GET /stats/dashboard.
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.stats.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
