package sync

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/smart-timetable/dashboard-api/internal/store"
)

// collection wraps one entity's Store with the degrade rules: reads against
// the scheduling service fall back to the last known copy instead of
// raising, writes propagate failures untouched. Collections backed by the
// local store (cache == nil) pass straight through.
type collection[T store.Record[T]] struct {
	entity  string
	backend store.Store[T]
	cache   *lastKnown[T]
	logger  *zap.Logger
	metrics Metrics
}

func newCollection[T store.Record[T]](entity string, backend store.Store[T], remote bool, logger *zap.Logger, metrics Metrics) *collection[T] {
	c := &collection[T]{entity: entity, backend: backend, logger: logger, metrics: metrics}
	if remote {
		c.cache = &lastKnown[T]{}
	}
	return c
}

func (c *collection[T]) origin() Source {
	if c.cache != nil {
		return SourceRemote
	}
	return SourceLocal
}

func (c *collection[T]) list(ctx context.Context) ([]T, Source, error) {
	if c.cache == nil {
		records, err := c.backend.List(ctx)
		return records, SourceLocal, err
	}
	start := time.Now()
	records, err := c.backend.List(ctx)
	c.metrics.ObserveRemote(c.entity, "list", time.Since(start), err == nil)
	if err != nil {
		c.logger.Warn("remote list failed, serving last known data",
			zap.String("entity", c.entity), zap.Error(err))
		c.metrics.RecordFallback(c.entity)
		return c.cache.snapshot(), SourceCache, nil
	}
	c.cache.replace(records)
	return records, SourceRemote, nil
}

func (c *collection[T]) add(ctx context.Context, record T) (T, Source, error) {
	if c.cache == nil {
		created, err := c.backend.Create(ctx, record)
		return created, SourceLocal, err
	}
	start := time.Now()
	created, err := c.backend.Create(ctx, record)
	c.metrics.ObserveRemote(c.entity, "create", time.Since(start), err == nil)
	if err != nil {
		var zero T
		return zero, SourceRemote, err
	}
	c.refreshAfterWrite(ctx, func() { c.cache.upsert(created) })
	return created, SourceRemote, nil
}

// update rewrites the record with the matching id. A record that is absent
// from the local store is left alone and reported as nil, not an error.
func (c *collection[T]) update(ctx context.Context, record T) (*T, Source, error) {
	if c.cache == nil {
		updated, err := c.backend.Update(ctx, record)
		if errors.Is(err, store.ErrNotFound) {
			return nil, SourceLocal, nil
		}
		if err != nil {
			return nil, SourceLocal, err
		}
		return &updated, SourceLocal, nil
	}
	start := time.Now()
	updated, err := c.backend.Update(ctx, record)
	c.metrics.ObserveRemote(c.entity, "update", time.Since(start), err == nil)
	if err != nil {
		return nil, SourceRemote, err
	}
	c.refreshAfterWrite(ctx, func() { c.cache.upsert(updated) })
	return &updated, SourceRemote, nil
}

func (c *collection[T]) remove(ctx context.Context, id int64) (Source, error) {
	if c.cache == nil {
		return SourceLocal, c.backend.Delete(ctx, id)
	}
	start := time.Now()
	err := c.backend.Delete(ctx, id)
	c.metrics.ObserveRemote(c.entity, "delete", time.Since(start), err == nil)
	if err != nil {
		return SourceRemote, err
	}
	c.refreshAfterWrite(ctx, func() { c.cache.removeID(id) })
	return SourceRemote, nil
}

// refreshAfterWrite re-reads the collection so the cache reflects what the
// scheduling service actually stored. When the re-read fails the cache is
// patched with the write we know about.
func (c *collection[T]) refreshAfterWrite(ctx context.Context, patch func()) {
	start := time.Now()
	records, err := c.backend.List(ctx)
	c.metrics.ObserveRemote(c.entity, "list", time.Since(start), err == nil)
	if err != nil {
		c.logger.Warn("refresh after write failed, patching cached copy",
			zap.String("entity", c.entity), zap.Error(err))
		patch()
		return
	}
	c.cache.replace(records)
}
