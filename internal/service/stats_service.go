package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
)

type statisticsProvider interface {
	Statistics(ctx context.Context) (*models.Statistics, sync.Source, error)
}

type overviewCache interface {
	Enabled() bool
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

const statsCacheKey = "stats:overview"

type cachedOverview struct {
	models.Statistics
	Source sync.Source `json:"source"`
}

// StatsService serves the dashboard headline counts, cache-aside over the
// syncer. Stale results (served from the last known copy) are never written
// to the cache so a recovered service is not shadowed by old numbers.
type StatsService struct {
	provider statisticsProvider
	cache    overviewCache
	ttl      time.Duration
	logger   *zap.Logger
}

// NewStatsService constructs a stats service.
func NewStatsService(provider statisticsProvider, cache overviewCache, ttl time.Duration, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	if cache == nil {
		cache = (*CacheService)(nil)
	}
	return &StatsService{provider: provider, cache: cache, ttl: ttl, logger: logger}
}

// Overview returns the statistics summary.
func (s *StatsService) Overview(ctx context.Context) (*models.Statistics, sync.Source, error) {
	if s.cache.Enabled() {
		var cached cachedOverview
		if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && hit {
			return &cached.Statistics, cached.Source, nil
		}
	}

	stats, source, err := s.provider.Statistics(ctx)
	if err != nil {
		return nil, source, err
	}
	if !source.Stale() {
		if err := s.cache.Set(ctx, statsCacheKey, cachedOverview{Statistics: *stats, Source: source}, s.ttl); err != nil {
			s.logger.Debug("statistics cache write failed", zap.Error(err))
		}
	}
	return stats, source, nil
}

// Invalidate drops the cached summary, forcing the next read through.
func (s *StatsService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
		s.logger.Debug("statistics cache invalidate failed", zap.Error(err))
	}
}
