package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

type storePinger interface {
	Ping(ctx context.Context) error
}

type modeReporter interface {
	Mode() models.Mode
}

type healthDocument struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Service   string      `json:"service,omitempty"`
	Database  string      `json:"database,omitempty"`
	Mode      models.Mode `json:"mode,omitempty"`
	Error     string      `json:"error,omitempty"`
}

const healthServiceName = "Smart Timetable Dashboard API"

// HealthHandler reports liveness in the same un-enveloped shape the
// scheduling service uses, so monitors can point at either.
type HealthHandler struct {
	store storePinger
	mode  modeReporter
}

// NewHealthHandler constructs a new HealthHandler.
func NewHealthHandler(store storePinger, mode modeReporter) *HealthHandler {
	return &HealthHandler{store: store, mode: mode}
}

// Health godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} healthDocument
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	now := time.Now().Format(time.RFC3339)
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, healthDocument{
			Status:    "unhealthy",
			Timestamp: now,
			Error:     err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, healthDocument{
		Status:    "healthy",
		Timestamp: now,
		Service:   healthServiceName,
		Database:  "connected",
		Mode:      h.mode.Mode(),
	})
}
