package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type breakSchedule interface {
	ListBreaks(ctx context.Context) ([]models.Break, sync.Source, error)
	AddBreak(ctx context.Context, input sync.BreakInput) (models.Break, sync.Source, error)
	UpdateBreak(ctx context.Context, id int64, input sync.BreakInput) (*models.Break, sync.Source, error)
	RemoveBreak(ctx context.Context, id int64) (sync.Source, error)
}

// BreakHandler wires break routes to the syncer. Breaks live in the local
// store in every mode; these routes never reach the scheduling service.
type BreakHandler struct {
	breaks breakSchedule
}

// NewBreakHandler constructs a new BreakHandler.
func NewBreakHandler(breaks breakSchedule) *BreakHandler {
	return &BreakHandler{breaks: breaks}
}

// List godoc
// @Summary List breaks
// @Tags Breaks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /breaks [get]
func (h *BreakHandler) List(c *gin.Context) {
	records, source, err := h.breaks.ListBreaks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary Add a break
// @Tags Breaks
// @Accept json
// @Produce json
// @Param payload body sync.BreakInput true "Break payload"
// @Success 201 {object} response.Envelope
// @Router /breaks [post]
func (h *BreakHandler) Create(c *gin.Context) {
	var input sync.BreakInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid break payload"))
		return
	}
	record, source, err := h.breaks.AddBreak(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// Update godoc
// @Summary Update a break
// @Tags Breaks
// @Accept json
// @Produce json
// @Param id path int true "Break ID"
// @Param payload body sync.BreakInput true "Break payload"
// @Success 200 {object} response.Envelope
// @Router /breaks/{id} [put]
func (h *BreakHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input sync.BreakInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid break payload"))
		return
	}
	record, source, err := h.breaks.UpdateBreak(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	if record == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "break not found"))
		return
	}
	response.OK(c, record)
}

// Delete godoc
// @Summary Remove a break
// @Tags Breaks
// @Param id path int true "Break ID"
// @Success 200 {object} response.Envelope
// @Router /breaks/{id} [delete]
func (h *BreakHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.breaks.RemoveBreak(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Success(c)
}
