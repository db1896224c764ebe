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

type subjectCatalog interface {
	ListSubjects(ctx context.Context) ([]models.Subject, sync.Source, error)
	AddSubject(ctx context.Context, input sync.SubjectInput) (models.Subject, sync.Source, error)
	RemoveSubject(ctx context.Context, id int64) (sync.Source, error)
}

// SubjectHandler wires subject routes to the syncer.
type SubjectHandler struct {
	subjects subjectCatalog
}

// NewSubjectHandler constructs a new SubjectHandler.
func NewSubjectHandler(subjects subjectCatalog) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

// List godoc
// @Summary List subjects
// @Tags Subjects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	records, source, err := h.subjects.ListSubjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary Add a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body sync.SubjectInput true "Subject payload"
// @Success 201 {object} response.Envelope
// @Router /subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	var input sync.SubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}
	record, source, err := h.subjects.AddSubject(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// Delete godoc
// @Summary Remove a subject
// @Tags Subjects
// @Param id path int true "Subject ID"
// @Success 200 {object} response.Envelope
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.subjects.RemoveSubject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Success(c)
}
