package store

import (
	"context"
	"errors"
)

// Record is implemented by every entity that flows through a Store. Records
// are value types; WithEntityID returns a relabeled copy instead of mutating.
type Record[T any] interface {
	EntityID() int64
	WithEntityID(id int64) T
}

// ErrNotFound reports that an id is absent from the backing collection.
var ErrNotFound = errors.New("record not found")

// Store reads and writes one entity collection. The remote implementation
// talks to the scheduling service, the local one to the durable store; the
// caller picks which at startup and never switches afterwards.
type Store[T Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id int64) error
}
