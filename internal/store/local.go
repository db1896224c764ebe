package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// KV is the slice of the durable local store a collection needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// LocalCollection keeps one entity slice as a JSON document under a single
// key in the durable local store. A missing or unreadable document reads as
// an empty collection so the dashboard keeps working with a damaged file.
type LocalCollection[T Record[T]] struct {
	kv     KV
	key    string
	ids    *IDGenerator
	logger *zap.Logger
}

func NewLocalCollection[T Record[T]](kv KV, key string, ids *IDGenerator, logger *zap.Logger) *LocalCollection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalCollection[T]{kv: kv, key: key, ids: ids, logger: logger}
}

func (c *LocalCollection[T]) load(ctx context.Context) []T {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		c.logger.Warn("local read failed, treating collection as empty",
			zap.String("key", c.key), zap.Error(err))
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn("local document is corrupt, treating collection as empty",
			zap.String("key", c.key), zap.Error(err))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func (c *LocalCollection[T]) persist(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.kv.Put(ctx, c.key, raw)
}

func (c *LocalCollection[T]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx), nil
}

func (c *LocalCollection[T]) Create(ctx context.Context, record T) (T, error) {
	records := c.load(ctx)
	created := record.WithEntityID(c.ids.Next())
	if err := c.persist(ctx, append(records, created)); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (c *LocalCollection[T]) Update(ctx context.Context, record T) (T, error) {
	records := c.load(ctx)
	for i := range records {
		if records[i].EntityID() != record.EntityID() {
			continue
		}
		records[i] = record
		if err := c.persist(ctx, records); err != nil {
			var zero T
			return zero, err
		}
		return record, nil
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the record with the given id. Removing an id that is not
// present is a no-op, not an error.
func (c *LocalCollection[T]) Delete(ctx context.Context, id int64) error {
	records := c.load(ctx)
	kept := make([]T, 0, len(records))
	for _, record := range records {
		if record.EntityID() != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.persist(ctx, kept)
}
