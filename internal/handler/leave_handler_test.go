package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/service"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	"github.com/smart-timetable/dashboard-api/pkg/jobs"
)

type leaveDeskMock struct {
	records []models.LeaveRequest
	source  sync.Source
	updated *models.LeaveRequest
	err     error
}

func (m *leaveDeskMock) ListLeaveRequests(ctx context.Context) ([]models.LeaveRequest, sync.Source, error) {
	return m.records, m.source, m.err
}

func (m *leaveDeskMock) AddLeaveRequest(ctx context.Context, input sync.LeaveRequestInput) (models.LeaveRequest, sync.Source, error) {
	if m.err != nil {
		return models.LeaveRequest{}, m.source, m.err
	}
	return models.LeaveRequest{ID: 3, FacultyName: input.FacultyName, Status: models.LeaveStatusPending}, m.source, nil
}

func (m *leaveDeskMock) UpdateLeaveStatus(ctx context.Context, id int64, status string) (*models.LeaveRequest, sync.Source, error) {
	return m.updated, m.source, m.err
}

type rescheduleSpy struct {
	ids chan int64
}

func (s *rescheduleSpy) AutoReschedule(ctx context.Context, id int64) (*models.RescheduleOutcome, error) {
	s.ids <- id
	return &models.RescheduleOutcome{Message: "rescheduled"}, nil
}

func TestLeaveStatusApprovalTriggersReschedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	spy := &rescheduleSpy{ids: make(chan int64, 1)}
	reschedule := service.NewRescheduleService(spy, zap.NewNop(), jobs.QueueConfig{Workers: 1}, true)
	reschedule.Start(context.Background())
	defer reschedule.Stop()

	mock := &leaveDeskMock{
		source:  sync.SourceRemote,
		updated: &models.LeaveRequest{ID: 9, FacultyName: "Dr. Rao", Status: models.LeaveStatusApproved},
	}
	h := NewLeaveHandler(mock, reschedule, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/leave-requests/9", leaveStatusRequest{Status: "approved"})
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	h.UpdateStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	select {
	case id := <-spy.ids:
		assert.Equal(t, int64(9), id)
	case <-time.After(2 * time.Second):
		t.Fatal("approval never reached the reschedule worker")
	}
}

func TestLeaveStatusRejectionSkipsReschedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	spy := &rescheduleSpy{ids: make(chan int64, 1)}
	reschedule := service.NewRescheduleService(spy, zap.NewNop(), jobs.QueueConfig{Workers: 1}, true)
	reschedule.Start(context.Background())
	defer reschedule.Stop()

	mock := &leaveDeskMock{
		source:  sync.SourceRemote,
		updated: &models.LeaveRequest{ID: 9, Status: models.LeaveStatusRejected},
	}
	h := NewLeaveHandler(mock, reschedule, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/leave-requests/9", leaveStatusRequest{Status: "rejected"})
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	h.UpdateStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, len(spy.ids))
}

func TestLeaveStatusMissingRecordIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &leaveDeskMock{source: sync.SourceLocal}
	h := NewLeaveHandler(mock, nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/leave-requests/44", leaveStatusRequest{Status: "approved"})
	c.Params = gin.Params{{Key: "id", Value: "44"}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveCreatePassesLegacyFacultyKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &leaveDeskMock{source: sync.SourceLocal}
	h := NewLeaveHandler(mock, nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/leave-requests", map[string]string{
		"faculty": "Dr. Rao",
		"date":    "2025-03-14",
	})

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
}
