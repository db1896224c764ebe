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

type practicalSchedule interface {
	ListPracticals(ctx context.Context) ([]models.Practical, sync.Source, error)
	AddPractical(ctx context.Context, input sync.PracticalInput) (models.Practical, sync.Source, error)
	UpdatePractical(ctx context.Context, id int64, input sync.PracticalInput) (*models.Practical, sync.Source, error)
	RemovePractical(ctx context.Context, id int64) (sync.Source, error)
}

// PracticalHandler wires practical routes to the syncer. Like breaks,
// practicals are local-store records in every mode.
type PracticalHandler struct {
	practicals practicalSchedule
}

// NewPracticalHandler constructs a new PracticalHandler.
func NewPracticalHandler(practicals practicalSchedule) *PracticalHandler {
	return &PracticalHandler{practicals: practicals}
}

// List godoc
// @Summary List practicals
// @Tags Practicals
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /practicals [get]
func (h *PracticalHandler) List(c *gin.Context) {
	records, source, err := h.practicals.ListPracticals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary Add a practical
// @Tags Practicals
// @Accept json
// @Produce json
// @Param payload body sync.PracticalInput true "Practical payload"
// @Success 201 {object} response.Envelope
// @Router /practicals [post]
func (h *PracticalHandler) Create(c *gin.Context) {
	var input sync.PracticalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid practical payload"))
		return
	}
	record, source, err := h.practicals.AddPractical(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// Update godoc
// @Summary Update a practical
// @Tags Practicals
// @Accept json
// @Produce json
// @Param id path int true "Practical ID"
// @Param payload body sync.PracticalInput true "Practical payload"
// @Success 200 {object} response.Envelope
// @Router /practicals/{id} [put]
func (h *PracticalHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input sync.PracticalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid practical payload"))
		return
	}
	record, source, err := h.practicals.UpdatePractical(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	if record == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "practical not found"))
		return
	}
	response.OK(c, record)
}

// Delete godoc
// @Summary Remove a practical
// @Tags Practicals
// @Param id path int true "Practical ID"
// @Success 200 {object} response.Envelope
// @Router /practicals/{id} [delete]
func (h *PracticalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.practicals.RemovePractical(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Success(c)
}
