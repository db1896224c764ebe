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

type facultyDirectory interface {
	ListFaculty(ctx context.Context) ([]models.Faculty, sync.Source, error)
	AddFaculty(ctx context.Context, input sync.FacultyInput) (models.Faculty, sync.Source, error)
	UpdateFaculty(ctx context.Context, id int64, input sync.FacultyInput) (*models.Faculty, sync.Source, error)
	RemoveFaculty(ctx context.Context, id int64) (sync.Source, error)
}

// FacultyHandler wires faculty routes to the syncer.
type FacultyHandler struct {
	faculty facultyDirectory
}

// NewFacultyHandler constructs a new FacultyHandler.
func NewFacultyHandler(faculty facultyDirectory) *FacultyHandler {
	return &FacultyHandler{faculty: faculty}
}

// List godoc
// @Summary List faculty members
// @Tags Faculty
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	records, source, err := h.faculty.ListFaculty(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary Add a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param payload body sync.FacultyInput true "Faculty payload"
// @Success 201 {object} response.Envelope
// @Router /faculty [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var input sync.FacultyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid faculty payload"))
		return
	}
	record, source, err := h.faculty.AddFaculty(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// Update godoc
// @Summary Update a faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param payload body sync.FacultyInput true "Faculty payload"
// @Success 200 {object} response.Envelope
// @Router /faculty/{id} [put]
func (h *FacultyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input sync.FacultyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid faculty payload"))
		return
	}
	record, source, err := h.faculty.UpdateFaculty(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	if record == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found"))
		return
	}
	response.OK(c, record)
}

// Delete godoc
// @Summary Remove a faculty member
// @Tags Faculty
// @Param id path int true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Router /faculty/{id} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.faculty.RemoveFaculty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Success(c)
}
