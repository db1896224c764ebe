package models

// Mode selects which backend is authoritative for the process lifetime.
// It is decided exactly once at startup and never re-evaluated.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)
