package sync

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/localstore"
	"github.com/smart-timetable/dashboard-api/internal/models"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// Timetable returns the published timetable. The grid is always normalized
// and never nil; when nothing is published the grid is simply empty.
func (s *Syncer) Timetable(ctx context.Context) (*models.Timetable, Source, error) {
	if s.mode == models.ModeLocal {
		return s.localTimetable(ctx), SourceLocal, nil
	}

	start := time.Now()
	remote, err := s.gateway.PublishedTimetable(ctx)
	s.metrics.ObserveRemote("timetable", "get", time.Since(start), err == nil)
	if err != nil {
		s.logger.Warn("remote timetable fetch failed, serving last known data", zap.Error(err))
		s.metrics.RecordFallback("timetable")
		if cached, ok := s.timetable.get(); ok {
			return cached, SourceCache, nil
		}
		return &models.Timetable{Grid: models.EmptyGrid()}, SourceCache, nil
	}
	if remote == nil {
		remote = &models.Timetable{}
	}
	remote.Grid = remote.Grid.Normalize()
	s.timetable.set(*remote)
	return remote, SourceRemote, nil
}

func (s *Syncer) localTimetable(ctx context.Context) *models.Timetable {
	tt := &models.Timetable{}
	raw, ok, err := s.kv.Get(ctx, localstore.KeyTimetable)
	switch {
	case err != nil:
		s.logger.Warn("local timetable read failed", zap.Error(err))
	case ok:
		if err := json.Unmarshal(raw, tt); err != nil {
			s.logger.Warn("local timetable document is corrupt", zap.Error(err))
			tt = &models.Timetable{}
		}
	}
	tt.Grid = tt.Grid.Normalize()
	return tt
}

// Generate asks the scheduling service for timetable candidates. Breaks and
// practicals not supplied by the caller are read from the local store, which
// is their only home.
func (s *Syncer) Generate(ctx context.Context, input GenerateInput) (*models.GenerateResult, error) {
	if s.mode != models.ModeRemote {
		return nil, appErrors.ErrRemoteOffline
	}

	req := models.GenerateRequest{
		Constraints: input.Constraints,
		Breaks:      input.Breaks,
		Practicals:  input.Practicals,
	}
	if req.Constraints == nil {
		req.Constraints = map[string]interface{}{}
	}
	if len(req.Breaks) == 0 {
		if breaks, _, err := s.breaks.list(ctx); err == nil {
			req.Breaks = breaks
		}
	}
	if len(req.Practicals) == 0 {
		if practicals, _, err := s.practicals.list(ctx); err == nil {
			req.Practicals = practicals
		}
	}

	start := time.Now()
	result, err := s.gateway.GenerateTimetable(ctx, req)
	s.metrics.ObserveRemote("timetable", "generate", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	for i := range result.Timetables {
		result.Timetables[i].Grid = result.Timetables[i].Grid.Normalize()
	}
	return result, nil
}

// Publish makes a generated timetable the published one.
func (s *Syncer) Publish(ctx context.Context, timetableID int64) error {
	if s.mode != models.ModeRemote {
		return appErrors.ErrRemoteOffline
	}

	start := time.Now()
	err := s.gateway.PublishTimetable(ctx, timetableID)
	s.metrics.ObserveRemote("timetable", "publish", time.Since(start), err == nil)
	if err != nil {
		return err
	}
	s.refreshTimetable(ctx)
	return nil
}

// AutoReschedule has the scheduling service rework the published timetable
// around an approved leave. The outcome message is the service's own wording
// and is passed to the caller untouched.
func (s *Syncer) AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error) {
	if s.mode != models.ModeRemote {
		return nil, appErrors.ErrRemoteOffline
	}

	start := time.Now()
	outcome, err := s.gateway.AutoReschedule(ctx, leaveRequestID)
	s.metrics.ObserveRemote("timetable", "reschedule", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	if outcome.Timetable != nil {
		outcome.Timetable.Grid = outcome.Timetable.Grid.Normalize()
		s.timetable.set(*outcome.Timetable)
	} else {
		s.refreshTimetable(ctx)
	}
	return outcome, nil
}

func (s *Syncer) refreshTimetable(ctx context.Context) {
	tt, err := s.gateway.PublishedTimetable(ctx)
	if err != nil {
		s.logger.Warn("timetable refresh after write failed", zap.Error(err))
		return
	}
	if tt == nil {
		return
	}
	tt.Grid = tt.Grid.Normalize()
	s.timetable.set(*tt)
}

// Statistics returns the dashboard headline counts. In local mode they are
// computed from the local collections.
func (s *Syncer) Statistics(ctx context.Context) (*models.Statistics, Source, error) {
	if s.mode == models.ModeLocal {
		return s.localStatistics(ctx), SourceLocal, nil
	}

	start := time.Now()
	stats, err := s.gateway.Statistics(ctx)
	s.metrics.ObserveRemote("statistics", "get", time.Since(start), err == nil)
	if err != nil {
		s.logger.Warn("remote statistics fetch failed, serving last known data", zap.Error(err))
		s.metrics.RecordFallback("statistics")
		if cached, ok := s.stats.get(); ok {
			return cached, SourceCache, nil
		}
		return &models.Statistics{}, SourceCache, nil
	}
	s.stats.set(*stats)
	return stats, SourceRemote, nil
}

func (s *Syncer) localStatistics(ctx context.Context) *models.Statistics {
	faculty, _, _ := s.faculty.list(ctx)
	rooms, _, _ := s.rooms.list(ctx)
	subjects, _, _ := s.subjects.list(ctx)
	leaves, _, _ := s.leaves.list(ctx)

	pending := 0
	for _, leave := range leaves {
		if leave.Status == models.LeaveStatusPending {
			pending++
		}
	}
	tt := s.localTimetable(ctx)

	return &models.Statistics{
		FacultyCount:       len(faculty),
		RoomCount:          len(rooms),
		SubjectCount:       len(subjects),
		PendingLeaves:      pending,
		TimetablePublished: tt.ID != 0,
	}
}
