package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/pkg/jobs"
)

type rescheduler interface {
	AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error)
}

const jobTypeReschedule = "auto_reschedule"

// RescheduleService reworks the published timetable in the background after
// a leave request is approved. It is feature-flagged: with the worker off,
// rescheduling only happens through the explicit endpoint, which matches
// what dashboard clients have always done.
type RescheduleService struct {
	syncer  rescheduler
	queue   *jobs.Queue
	logger  *zap.Logger
	enabled bool
}

// NewRescheduleService constructs the service and its queue. Start must be
// called before approvals are handed to OnLeaveApproved.
func NewRescheduleService(syncer rescheduler, logger *zap.Logger, cfg jobs.QueueConfig, enabled bool) *RescheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &RescheduleService{syncer: syncer, logger: logger.Named("reschedule"), enabled: enabled}
	cfg.Logger = s.logger
	s.queue = jobs.NewQueue("reschedule", s.handle, cfg)
	return s
}

// Enabled reports whether approvals trigger background rescheduling.
func (s *RescheduleService) Enabled() bool {
	return s != nil && s.enabled
}

// Start launches the queue workers.
func (s *RescheduleService) Start(ctx context.Context) {
	if s.Enabled() {
		s.queue.Start(ctx)
	}
}

// Stop drains the workers.
func (s *RescheduleService) Stop() {
	if s.Enabled() {
		s.queue.Stop()
	}
}

// OnLeaveApproved enqueues an automatic reschedule for the approved leave.
// A full queue or a stopped worker is logged, never surfaced: the approval
// itself already succeeded.
func (s *RescheduleService) OnLeaveApproved(leaveRequestID int64) {
	if !s.Enabled() {
		return
	}
	err := s.queue.Enqueue(jobs.Job{Type: jobTypeReschedule, Payload: leaveRequestID})
	if err != nil {
		s.logger.Warn("could not enqueue reschedule",
			zap.Int64("leave_request_id", leaveRequestID), zap.Error(err))
	}
}

func (s *RescheduleService) handle(ctx context.Context, job jobs.Job) error {
	id, ok := job.Payload.(int64)
	if !ok {
		s.logger.Error("discarding reschedule job with unexpected payload",
			zap.String("job_id", job.ID), zap.Any("payload", job.Payload))
		return nil
	}
	outcome, err := s.syncer.AutoReschedule(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("timetable rescheduled",
		zap.Int64("leave_request_id", id), zap.String("message", outcome.Message))
	return nil
}
