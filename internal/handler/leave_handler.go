package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/service"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type leaveDesk interface {
	ListLeaveRequests(ctx context.Context) ([]models.LeaveRequest, sync.Source, error)
	AddLeaveRequest(ctx context.Context, input sync.LeaveRequestInput) (models.LeaveRequest, sync.Source, error)
	UpdateLeaveStatus(ctx context.Context, id int64, status string) (*models.LeaveRequest, sync.Source, error)
}

type leaveStatusRequest struct {
	Status string `json:"status"`
}

// LeaveHandler wires leave-request routes to the syncer. Approvals kick off
// the background reschedule when the worker is enabled.
type LeaveHandler struct {
	leaves     leaveDesk
	reschedule *service.RescheduleService
	stats      *service.StatsService
}

// NewLeaveHandler constructs a new LeaveHandler. reschedule and stats may
// be nil.
func NewLeaveHandler(leaves leaveDesk, reschedule *service.RescheduleService, stats *service.StatsService) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, reschedule: reschedule, stats: stats}
}

// List godoc
// @Summary List leave requests
// @Tags Leave Requests
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /leave-requests [get]
func (h *LeaveHandler) List(c *gin.Context) {
	records, source, err := h.leaves.ListLeaveRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary File a leave request
// @Tags Leave Requests
// @Accept json
// @Produce json
// @Param payload body sync.LeaveRequestInput true "Leave request payload"
// @Success 201 {object} response.Envelope
// @Router /leave-requests [post]
func (h *LeaveHandler) Create(c *gin.Context) {
	var input sync.LeaveRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave request payload"))
		return
	}
	record, source, err := h.leaves.AddLeaveRequest(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateStats(c)
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// UpdateStatus godoc
// @Summary Approve or reject a leave request
// @Tags Leave Requests
// @Accept json
// @Produce json
// @Param id path int true "Leave request ID"
// @Param payload body leaveStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /leave-requests/{id} [put]
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req leaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave request payload"))
		return
	}
	record, source, err := h.leaves.UpdateLeaveStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	if record == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "leave request not found"))
		return
	}
	h.invalidateStats(c)
	if record.Status == models.LeaveStatusApproved {
		h.reschedule.OnLeaveApproved(record.ID)
	}
	response.OK(c, record)
}

func (h *LeaveHandler) invalidateStats(c *gin.Context) {
	if h.stats != nil {
		h.stats.Invalidate(c.Request.Context())
	}
}
