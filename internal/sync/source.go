package sync

// Source tells callers where a result came from so responses can flag data
// that may lag behind the scheduling service.
type Source string

const (
	// SourceRemote marks data read from the scheduling service just now.
	SourceRemote Source = "remote"
	// SourceLocal marks data read from the durable local store.
	SourceLocal Source = "local"
	// SourceCache marks the last known remote data, served because the
	// scheduling service did not answer.
	SourceCache Source = "cache"
)

// Stale reports whether the data may be behind the scheduling service.
func (s Source) Stale() bool { return s == SourceCache }
