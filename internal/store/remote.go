package store

import "context"

// Doer executes collection verbs against the scheduling service. Satisfied by
// gateway.Client.
type Doer interface {
	List(ctx context.Context, path string, out interface{}) error
	Create(ctx context.Context, path string, body interface{}) (int64, error)
	Update(ctx context.Context, path string, id int64, body interface{}) error
	Delete(ctx context.Context, path string, id int64) error
}

// RemoteResource exposes one REST collection of the scheduling service as a
// Store. The service assigns ids on create; everything else round-trips the
// record as sent.
type RemoteResource[T Record[T]] struct {
	doer Doer
	path string
}

func NewRemoteResource[T Record[T]](doer Doer, path string) *RemoteResource[T] {
	return &RemoteResource[T]{doer: doer, path: path}
}

func (r *RemoteResource[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.doer.List(ctx, r.path, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (r *RemoteResource[T]) Create(ctx context.Context, record T) (T, error) {
	id, err := r.doer.Create(ctx, r.path, record)
	if err != nil {
		var zero T
		return zero, err
	}
	return record.WithEntityID(id), nil
}

func (r *RemoteResource[T]) Update(ctx context.Context, record T) (T, error) {
	if err := r.doer.Update(ctx, r.path, record.EntityID(), record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

func (r *RemoteResource[T]) Delete(ctx context.Context, id int64) error {
	return r.doer.Delete(ctx, r.path, id)
}
