package sync

import (
	"context"
	stdsync "sync"
	"time"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

// RemoteProbe is the slice of the gateway client the arbiter needs.
type RemoteProbe interface {
	Ready() bool
	Health(ctx context.Context) (*models.HealthStatus, error)
}

// Seeder prepares the local store for local mode. Implemented by
// localstore.Store.
type Seeder interface {
	SeedDefaults(ctx context.Context) error
}

// ArbiterConfig bounds the startup waits. Zero values fall back to
// conservative defaults.
type ArbiterConfig struct {
	PollInterval        time.Duration
	GatewayWaitAttempts int
	ReadyWaitAttempts   int
	ProbeTimeout        time.Duration
}

// Arbiter decides once, at startup, whether the process runs against the
// scheduling service or the local store. The decision never raises and is
// never revisited: any doubt about the remote side resolves to local mode
// with seeded defaults.
type Arbiter struct {
	provider func() RemoteProbe
	seeder   Seeder
	cfg      ArbiterConfig
	logger   *zap.Logger
	metrics  Metrics

	once stdsync.Once
	mode models.Mode
}

// NewArbiter builds an arbiter. The provider is polled because the gateway
// client may not exist yet when arbitration starts; it returns nil until
// the client is constructed.
func NewArbiter(provider func() RemoteProbe, seeder Seeder, cfg ArbiterConfig, logger *zap.Logger, metrics Metrics) *Arbiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	if cfg.GatewayWaitAttempts < 1 {
		cfg.GatewayWaitAttempts = 1
	}
	if cfg.ReadyWaitAttempts < 1 {
		cfg.ReadyWaitAttempts = 1
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 3 * time.Second
	}
	return &Arbiter{
		provider: provider,
		seeder:   seeder,
		cfg:      cfg,
		logger:   logger.Named("arbiter"),
		metrics:  metrics,
	}
}

// Decide returns the operating mode, computing it on the first call and
// returning the cached answer afterwards.
func (a *Arbiter) Decide(ctx context.Context) models.Mode {
	a.once.Do(func() {
		a.mode = a.decide(ctx)
		a.metrics.SetMode(a.mode)
	})
	return a.mode
}

func (a *Arbiter) decide(ctx context.Context) models.Mode {
	probe := a.waitForProbe(ctx)
	if probe == nil {
		a.logger.Warn("scheduling service client never appeared, running local")
		return a.seedLocal(ctx)
	}
	if !a.waitForReady(ctx, probe) {
		a.logger.Warn("scheduling service client never became ready, running local")
		return a.seedLocal(ctx)
	}

	probeCtx, cancel := context.WithTimeout(ctx, a.cfg.ProbeTimeout)
	defer cancel()
	health, err := probe.Health(probeCtx)
	if err != nil {
		a.logger.Warn("health probe failed, running local", zap.Error(err))
		return a.seedLocal(ctx)
	}
	if !health.Healthy() {
		a.logger.Warn("scheduling service reported unhealthy, running local",
			zap.String("status", health.Status))
		return a.seedLocal(ctx)
	}

	a.logger.Info("scheduling service is healthy, running remote")
	return models.ModeRemote
}

func (a *Arbiter) waitForProbe(ctx context.Context) RemoteProbe {
	for attempt := 0; attempt < a.cfg.GatewayWaitAttempts; attempt++ {
		if attempt > 0 && !a.sleep(ctx) {
			return nil
		}
		if probe := a.provider(); probe != nil {
			return probe
		}
	}
	return nil
}

func (a *Arbiter) waitForReady(ctx context.Context, probe RemoteProbe) bool {
	for attempt := 0; attempt < a.cfg.ReadyWaitAttempts; attempt++ {
		if attempt > 0 && !a.sleep(ctx) {
			return false
		}
		if probe.Ready() {
			return true
		}
	}
	return false
}

func (a *Arbiter) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(a.cfg.PollInterval):
		return true
	}
}

func (a *Arbiter) seedLocal(ctx context.Context) models.Mode {
	if err := a.seeder.SeedDefaults(ctx); err != nil {
		a.logger.Error("seeding local defaults failed", zap.Error(err))
	}
	return models.ModeLocal
}
