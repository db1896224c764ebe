package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type statsOverview interface {
	Overview(ctx context.Context) (*models.Statistics, sync.Source, error)
}

// StatsHandler serves the dashboard statistics summary.
type StatsHandler struct {
	stats statsOverview
}

// NewStatsHandler constructs a new StatsHandler.
func NewStatsHandler(stats statsOverview) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get godoc
// @Summary Dashboard statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /statistics [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, source, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, stats)
}
