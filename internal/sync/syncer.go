package sync

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/localstore"
	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/store"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// SchedulerGateway is everything the syncer needs from the scheduling
// service client.
type SchedulerGateway interface {
	store.Doer
	Ready() bool
	Health(ctx context.Context) (*models.HealthStatus, error)
	PublishedTimetable(ctx context.Context) (*models.Timetable, error)
	GenerateTimetable(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error)
	PublishTimetable(ctx context.Context, timetableID int64) error
	AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
}

// KV is the slice of the durable local store the syncer uses directly.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Params collects the syncer's dependencies. Mode comes from the arbiter
// and is fixed for the process lifetime.
type Params struct {
	Mode     models.Mode
	Gateway  SchedulerGateway
	KV       KV
	Validate *validator.Validate
	Logger   *zap.Logger
	Metrics  Metrics
}

// Syncer routes every dashboard operation to the backend the arbiter chose
// and keeps the last known remote data for degraded reads. Breaks and
// practicals always live in the local store, whatever the mode.
type Syncer struct {
	mode     models.Mode
	gateway  SchedulerGateway
	kv       KV
	validate *validator.Validate
	logger   *zap.Logger
	metrics  Metrics

	faculty    *collection[models.Faculty]
	rooms      *collection[models.Room]
	subjects   *collection[models.Subject]
	breaks     *collection[models.Break]
	practicals *collection[models.Practical]
	leaves     *collection[models.LeaveRequest]

	timetable *lastKnownValue[models.Timetable]
	stats     *lastKnownValue[models.Statistics]

	sessionMu   stdsync.RWMutex
	currentUser *models.User
}

// New builds a Syncer for the given mode.
func New(p Params) *Syncer {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("sync")
	metrics := p.Metrics
	if metrics == nil {
		metrics = NopMetrics()
	}
	validate := p.Validate
	if validate == nil {
		validate = validator.New()
	}

	s := &Syncer{
		mode:      p.Mode,
		gateway:   p.Gateway,
		kv:        p.KV,
		validate:  validate,
		logger:    logger,
		metrics:   metrics,
		timetable: &lastKnownValue[models.Timetable]{},
		stats:     &lastKnownValue[models.Statistics]{},
	}

	ids := store.NewIDGenerator()
	remote := p.Mode == models.ModeRemote

	s.faculty = buildCollection[models.Faculty](s, ids, "faculty", "/api/faculty", localstore.KeyFaculty, remote)
	s.rooms = buildCollection[models.Room](s, ids, "rooms", "/api/rooms", localstore.KeyRooms, remote)
	s.subjects = buildCollection[models.Subject](s, ids, "subjects", "/api/subjects", localstore.KeySubjects, remote)
	s.leaves = buildCollection[models.LeaveRequest](s, ids, "leave-requests", "/api/leave-requests", localstore.KeyLeaveRequests, remote)

	// Local in every mode: the scheduling service keeps no copy of these.
	s.breaks = buildCollection[models.Break](s, ids, "breaks", "", localstore.KeyBreaks, false)
	s.practicals = buildCollection[models.Practical](s, ids, "practicals", "", localstore.KeyPracticals, false)

	return s
}

func buildCollection[T store.Record[T]](s *Syncer, ids *store.IDGenerator, entity, path, key string, remote bool) *collection[T] {
	if remote {
		return newCollection[T](entity, store.NewRemoteResource[T](s.gateway, path), true, s.logger, s.metrics)
	}
	return newCollection[T](entity, store.NewLocalCollection[T](s.kv, key, ids, s.logger), false, s.logger, s.metrics)
}

// Mode reports the backend chosen at startup.
func (s *Syncer) Mode() models.Mode { return s.mode }

func (s *Syncer) origin() Source {
	if s.mode == models.ModeRemote {
		return SourceRemote
	}
	return SourceLocal
}

// --- Faculty ---

func (s *Syncer) ListFaculty(ctx context.Context) ([]models.Faculty, Source, error) {
	return s.faculty.list(ctx)
}

func (s *Syncer) AddFaculty(ctx context.Context, input FacultyInput) (models.Faculty, Source, error) {
	if err := s.validateInput(input); err != nil {
		return models.Faculty{}, s.faculty.origin(), err
	}
	return s.faculty.add(ctx, input.model())
}

func (s *Syncer) UpdateFaculty(ctx context.Context, id int64, input FacultyInput) (*models.Faculty, Source, error) {
	if err := s.validateInput(input); err != nil {
		return nil, s.faculty.origin(), err
	}
	return s.faculty.update(ctx, input.model().WithEntityID(id))
}

func (s *Syncer) RemoveFaculty(ctx context.Context, id int64) (Source, error) {
	return s.faculty.remove(ctx, id)
}

// --- Rooms (no update: the dashboard replaces rooms instead) ---

func (s *Syncer) ListRooms(ctx context.Context) ([]models.Room, Source, error) {
	return s.rooms.list(ctx)
}

func (s *Syncer) AddRoom(ctx context.Context, input RoomInput) (models.Room, Source, error) {
	if err := s.validateInput(input); err != nil {
		return models.Room{}, s.rooms.origin(), err
	}
	return s.rooms.add(ctx, input.model())
}

func (s *Syncer) RemoveRoom(ctx context.Context, id int64) (Source, error) {
	return s.rooms.remove(ctx, id)
}

// --- Subjects ---

func (s *Syncer) ListSubjects(ctx context.Context) ([]models.Subject, Source, error) {
	return s.subjects.list(ctx)
}

func (s *Syncer) AddSubject(ctx context.Context, input SubjectInput) (models.Subject, Source, error) {
	if err := s.validateInput(input); err != nil {
		return models.Subject{}, s.subjects.origin(), err
	}
	return s.subjects.add(ctx, input.model())
}

func (s *Syncer) RemoveSubject(ctx context.Context, id int64) (Source, error) {
	return s.subjects.remove(ctx, id)
}

// --- Breaks ---

func (s *Syncer) ListBreaks(ctx context.Context) ([]models.Break, Source, error) {
	return s.breaks.list(ctx)
}

func (s *Syncer) AddBreak(ctx context.Context, input BreakInput) (models.Break, Source, error) {
	if err := s.validateInput(input); err != nil {
		return models.Break{}, SourceLocal, err
	}
	return s.breaks.add(ctx, input.model())
}

func (s *Syncer) UpdateBreak(ctx context.Context, id int64, input BreakInput) (*models.Break, Source, error) {
	if err := s.validateInput(input); err != nil {
		return nil, SourceLocal, err
	}
	return s.breaks.update(ctx, input.model().WithEntityID(id))
}

func (s *Syncer) RemoveBreak(ctx context.Context, id int64) (Source, error) {
	return s.breaks.remove(ctx, id)
}

// --- Practicals ---

func (s *Syncer) ListPracticals(ctx context.Context) ([]models.Practical, Source, error) {
	return s.practicals.list(ctx)
}

func (s *Syncer) AddPractical(ctx context.Context, input PracticalInput) (models.Practical, Source, error) {
	if err := s.validateInput(input); err != nil {
		return models.Practical{}, SourceLocal, err
	}
	return s.practicals.add(ctx, input.model())
}

func (s *Syncer) UpdatePractical(ctx context.Context, id int64, input PracticalInput) (*models.Practical, Source, error) {
	if err := s.validateInput(input); err != nil {
		return nil, SourceLocal, err
	}
	return s.practicals.update(ctx, input.model().WithEntityID(id))
}

func (s *Syncer) RemovePractical(ctx context.Context, id int64) (Source, error) {
	return s.practicals.remove(ctx, id)
}

// --- Leave requests ---

func (s *Syncer) ListLeaveRequests(ctx context.Context) ([]models.LeaveRequest, Source, error) {
	return s.leaves.list(ctx)
}

func (s *Syncer) AddLeaveRequest(ctx context.Context, input LeaveRequestInput) (models.LeaveRequest, Source, error) {
	record := input.model()
	if record.FacultyName == "" {
		return models.LeaveRequest{}, s.leaves.origin(),
			appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "faculty_name is required")
	}
	if err := s.validateInput(input); err != nil {
		return models.LeaveRequest{}, s.leaves.origin(), err
	}
	if s.mode == models.ModeLocal {
		record.CreatedAt = time.Now().Format(time.RFC3339)
	}
	return s.leaves.add(ctx, record)
}

// UpdateLeaveStatus merges the new status into the stored record. In remote
// mode an id the cache has never seen is still sent upstream; the
// scheduling service merges by id.
func (s *Syncer) UpdateLeaveStatus(ctx context.Context, id int64, status string) (*models.LeaveRequest, Source, error) {
	if err := s.validateInput(leaveStatusInput{Status: status}); err != nil {
		return nil, s.leaves.origin(), err
	}

	records, _, err := s.leaves.list(ctx)
	if err != nil {
		return nil, s.leaves.origin(), err
	}
	var record models.LeaveRequest
	found := false
	for _, candidate := range records {
		if candidate.ID == id {
			record, found = candidate, true
			break
		}
	}
	if !found {
		if s.mode == models.ModeLocal {
			return nil, SourceLocal, nil
		}
		record = models.LeaveRequest{ID: id}
	}
	record.Status = status
	return s.leaves.update(ctx, record)
}
