package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type timetablePlanner interface {
	Timetable(ctx context.Context) (*models.Timetable, sync.Source, error)
	Generate(ctx context.Context, input sync.GenerateInput) (*models.GenerateResult, error)
	Publish(ctx context.Context, timetableID int64) error
	AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error)
}

type publishRequest struct {
	TimetableID int64 `json:"timetable_id"`
}

type rescheduleRequest struct {
	LeaveRequestID int64 `json:"leave_request_id"`
}

// TimetableHandler wires timetable routes to the syncer. Generation,
// publication and rescheduling only exist on the scheduling service; the
// syncer answers REMOTE_OFFLINE for them in local mode.
type TimetableHandler struct {
	planner timetablePlanner
}

// NewTimetableHandler constructs a new TimetableHandler.
func NewTimetableHandler(planner timetablePlanner) *TimetableHandler {
	return &TimetableHandler{planner: planner}
}

// Get godoc
// @Summary Get the published timetable
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) Get(c *gin.Context) {
	timetable, source, err := h.planner.Timetable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, timetable)
}

// Generate godoc
// @Summary Generate timetable options
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body sync.GenerateInput false "Constraints, breaks and practicals"
// @Success 200 {object} response.Envelope
// @Router /generate-timetable [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	// An empty body requests generation with default constraints.
	var input sync.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	result, err := h.planner.Generate(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Publish godoc
// @Summary Publish a generated timetable
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body publishRequest true "Timetable ID"
// @Success 200 {object} response.Envelope
// @Router /publish-timetable [post]
func (h *TimetableHandler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TimetableID == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Timetable ID required"))
		return
	}
	if err := h.planner.Publish(c.Request.Context(), req.TimetableID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// AutoReschedule godoc
// @Summary Reschedule the published timetable around an approved leave
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body rescheduleRequest true "Leave request ID"
// @Success 200 {object} response.Envelope
// @Router /auto-reschedule [post]
func (h *TimetableHandler) AutoReschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LeaveRequestID == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Leave request ID required"))
		return
	}
	outcome, err := h.planner.AutoReschedule(c.Request.Context(), req.LeaveRequestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithMessage(c, outcome.Timetable, outcome.Message)
}
