package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type plannerMock struct {
	timetable    *models.Timetable
	source       sync.Source
	generated    *models.GenerateResult
	generateIn   *sync.GenerateInput
	publishedIDs []int64
	outcome      *models.RescheduleOutcome
	err          error
}

func (m *plannerMock) Timetable(ctx context.Context) (*models.Timetable, sync.Source, error) {
	return m.timetable, m.source, m.err
}

func (m *plannerMock) Generate(ctx context.Context, input sync.GenerateInput) (*models.GenerateResult, error) {
	m.generateIn = &input
	if m.err != nil {
		return nil, m.err
	}
	if m.generated != nil {
		return m.generated, nil
	}
	return &models.GenerateResult{Timetables: []models.TimetableOption{}}, nil
}

func (m *plannerMock) Publish(ctx context.Context, timetableID int64) error {
	m.publishedIDs = append(m.publishedIDs, timetableID)
	return m.err
}

func (m *plannerMock) AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.outcome, nil
}

func TestTimetableGetServesCachedCopy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{timetable: &models.Timetable{ID: 5, Grid: models.EmptyGrid()}, source: sync.SourceCache}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/timetable", nil)

	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cache", w.Header().Get(response.SourceHeader))
}

func TestTimetableGenerateAcceptsEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/generate-timetable", nil)

	h.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.generateIn)
}

func TestTimetableGenerateOfflineSurfacesUpstreamError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{err: appErrors.ErrRemoteOffline}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/generate-timetable", nil)

	h.Generate(c)

	require.Equal(t, appErrors.ErrRemoteOffline.Status, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrRemoteOffline.Message, envelope.Error)
}

func TestTimetablePublishRequiresID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/publish-timetable", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Publish(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Timetable ID required", envelope.Error)
	assert.Empty(t, mock.publishedIDs)
}

func TestTimetablePublishForwardsID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/publish-timetable", publishRequest{TimetableID: 12})

	h.Publish(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{12}, mock.publishedIDs)
}

func TestTimetableAutoRescheduleKeepsServiceMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &plannerMock{outcome: &models.RescheduleOutcome{
		Timetable: &models.Timetable{ID: 9, Grid: models.EmptyGrid()},
		Message:   "Timetable automatically rescheduled",
	}}
	h := NewTimetableHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/auto-reschedule", rescheduleRequest{LeaveRequestID: 4})

	h.AutoReschedule(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Timetable automatically rescheduled", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestTimetableAutoRescheduleRequiresID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTimetableHandler(&plannerMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auto-reschedule", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.AutoReschedule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
