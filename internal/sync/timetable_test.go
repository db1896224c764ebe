package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-timetable/dashboard-api/internal/localstore"
	"github.com/smart-timetable/dashboard-api/internal/models"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

func TestTimetableFallsBackToEmptyGrid(t *testing.T) {
	gw := &fakeGateway{publishedFn: func() (*models.Timetable, error) {
		return nil, errors.New("connection refused")
	}}
	s := newRemoteSyncer(gw, newMemKV())

	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	require.NotNil(t, tt)
	for _, day := range models.Days {
		require.Contains(t, tt.Grid, day)
		for _, period := range models.Periods {
			assert.Contains(t, tt.Grid[day], period)
		}
	}
}

func TestTimetableServesLastPublishedOnFailure(t *testing.T) {
	published := &models.Timetable{ID: 5, Grid: models.Grid{
		"Monday": {"9:00-10:00": {Subject: "Math", Faculty: "Dr. Ada", Room: "101", Type: models.SlotRegular}},
	}}
	gw := &fakeGateway{publishedFn: func() (*models.Timetable, error) { return published, nil }}
	s := newRemoteSyncer(gw, newMemKV())

	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, source)
	assert.Equal(t, int64(5), tt.ID)

	gw.publishedFn = func() (*models.Timetable, error) { return nil, errors.New("down") }

	tt, source, err = s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, int64(5), tt.ID)
	require.NotNil(t, tt.Grid["Monday"]["9:00-10:00"])
	assert.Equal(t, "Math", tt.Grid["Monday"]["9:00-10:00"].Subject)
}

func TestTimetableNonePublishedIsEmptyGrid(t *testing.T) {
	s := newRemoteSyncer(&fakeGateway{}, newMemKV())

	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, source)
	assert.Zero(t, tt.ID)
	assert.Nil(t, tt.Grid["Monday"]["9:00-10:00"])
}

func TestLocalTimetableReadsDurableStore(t *testing.T) {
	kv := newMemKV()
	kv.data[localstore.KeyTimetable] = []byte(`{"id":3,"timetable":{"Monday":{"9:00-10:00":{"subject":"Physics","faculty":"Dr. Ada","room":"Lab 1","type":"regular"}}}}`)
	s := newLocalSyncer(kv)

	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, source)
	assert.Equal(t, int64(3), tt.ID)
	require.NotNil(t, tt.Grid["Monday"]["9:00-10:00"])
	assert.Equal(t, "Physics", tt.Grid["Monday"]["9:00-10:00"].Subject)
	// Normalization fills the rest of the week.
	assert.Contains(t, tt.Grid, "Friday")
}

func TestGenerateOfflineInLocalMode(t *testing.T) {
	s := newLocalSyncer(newMemKV())

	_, err := s.Generate(context.Background(), GenerateInput{})
	assert.ErrorIs(t, err, appErrors.ErrRemoteOffline)

	err = s.Publish(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrRemoteOffline)

	_, err = s.AutoReschedule(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrRemoteOffline)
}

func TestGenerateInjectsLocalBreaksAndPracticals(t *testing.T) {
	var captured models.GenerateRequest
	gw := &fakeGateway{generateFn: func(req models.GenerateRequest) (*models.GenerateResult, error) {
		captured = req
		return &models.GenerateResult{TimetableID: 11}, nil
	}}
	s := newRemoteSyncer(gw, newMemKV())
	ctx := context.Background()

	_, _, err := s.AddBreak(ctx, BreakInput{Name: "Lunch", StartTime: "12:00", Duration: 60})
	require.NoError(t, err)
	_, _, err = s.AddPractical(ctx, PracticalInput{Subject: "Physics", Faculty: "Dr. Ada", Room: "Lab 1"})
	require.NoError(t, err)

	result, err := s.Generate(ctx, GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.TimetableID)

	require.Len(t, captured.Breaks, 1)
	assert.Equal(t, "Lunch", captured.Breaks[0].Name)
	require.Len(t, captured.Practicals, 1)
	assert.Equal(t, "Physics", captured.Practicals[0].Subject)
	assert.NotNil(t, captured.Constraints)
}

func TestGenerateKeepsCallerSuppliedBreaks(t *testing.T) {
	var captured models.GenerateRequest
	gw := &fakeGateway{generateFn: func(req models.GenerateRequest) (*models.GenerateResult, error) {
		captured = req
		return &models.GenerateResult{}, nil
	}}
	s := newRemoteSyncer(gw, newMemKV())
	ctx := context.Background()

	_, _, err := s.AddBreak(ctx, BreakInput{Name: "Stored Break", StartTime: "11:00", Duration: 15})
	require.NoError(t, err)

	_, err = s.Generate(ctx, GenerateInput{
		Breaks: []models.Break{{Name: "Explicit Break", StartTime: "10:00", Duration: 10}},
	})
	require.NoError(t, err)

	require.Len(t, captured.Breaks, 1)
	assert.Equal(t, "Explicit Break", captured.Breaks[0].Name)
}

func TestPublishRefreshesCachedTimetable(t *testing.T) {
	published := &models.Timetable{ID: 9, Grid: models.EmptyGrid()}
	gw := &fakeGateway{publishedFn: func() (*models.Timetable, error) { return published, nil }}
	s := newRemoteSyncer(gw, newMemKV())

	require.NoError(t, s.Publish(context.Background(), 9))

	gw.publishedFn = func() (*models.Timetable, error) { return nil, errors.New("down") }
	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, int64(9), tt.ID)
}

func TestPublishFailurePropagates(t *testing.T) {
	gw := &fakeGateway{publishErr: errors.New("no such timetable")}
	s := newRemoteSyncer(gw, newMemKV())

	assert.Error(t, s.Publish(context.Background(), 404))
}

func TestAutoRescheduleKeepsServiceMessage(t *testing.T) {
	outcome := &models.RescheduleOutcome{
		Timetable: &models.Timetable{ID: 12, Grid: models.EmptyGrid()},
		Message:   "Timetable updated. 3 classes reassigned.",
	}
	gw := &fakeGateway{rescheduleFn: func(int64) (*models.RescheduleOutcome, error) { return outcome, nil }}
	s := newRemoteSyncer(gw, newMemKV())

	got, err := s.AutoReschedule(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Timetable updated. 3 classes reassigned.", got.Message)

	// The rescheduled timetable becomes the last known copy.
	gw.publishedFn = func() (*models.Timetable, error) { return nil, errors.New("down") }
	tt, source, err := s.Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, int64(12), tt.ID)
}

func TestLocalStatisticsCountsCollections(t *testing.T) {
	s := newLocalSyncer(newMemKV())
	ctx := context.Background()

	for _, name := range []string{"Dr. Ada", "Dr. Grace"} {
		_, _, err := s.AddFaculty(ctx, FacultyInput{Name: name})
		require.NoError(t, err)
	}
	_, _, err := s.AddRoom(ctx, RoomInput{Name: "101"})
	require.NoError(t, err)
	for _, name := range []string{"Math", "Physics", "Chemistry"} {
		_, _, err := s.AddSubject(ctx, SubjectInput{Name: name})
		require.NoError(t, err)
	}
	_, _, err = s.AddLeaveRequest(ctx, LeaveRequestInput{FacultyName: "Dr. Ada", Date: "2025-04-01"})
	require.NoError(t, err)
	approvedLeave, _, err := s.AddLeaveRequest(ctx, LeaveRequestInput{FacultyName: "Dr. Grace", Date: "2025-04-02"})
	require.NoError(t, err)
	_, _, err = s.UpdateLeaveStatus(ctx, approvedLeave.ID, models.LeaveStatusApproved)
	require.NoError(t, err)

	stats, source, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, source)
	assert.Equal(t, 2, stats.FacultyCount)
	assert.Equal(t, 1, stats.RoomCount)
	assert.Equal(t, 3, stats.SubjectCount)
	assert.Equal(t, 1, stats.PendingLeaves)
	assert.False(t, stats.TimetablePublished)
}

func TestRemoteStatisticsFallsBackToLastKnown(t *testing.T) {
	gw := &fakeGateway{statsFn: func() (*models.Statistics, error) {
		return &models.Statistics{FacultyCount: 8, TimetablePublished: true}, nil
	}}
	s := newRemoteSyncer(gw, newMemKV())

	_, source, err := s.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, source)

	gw.statsFn = func() (*models.Statistics, error) { return nil, errors.New("down") }
	stats, source, err := s.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, 8, stats.FacultyCount)
	assert.True(t, stats.TimetablePublished)
}

func TestRemoteStatisticsColdCacheServesZeroValues(t *testing.T) {
	gw := &fakeGateway{statsFn: func() (*models.Statistics, error) { return nil, errors.New("down") }}
	s := newRemoteSyncer(gw, newMemKV())

	stats, source, err := s.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	require.NotNil(t, stats)
	assert.Zero(t, stats.FacultyCount)
}
