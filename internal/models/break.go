package models

// Break is a recess window the optimizer must keep free. Breaks exist only
// in the local store; the scheduling service receives them per request.
type Break struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	Duration  int    `json:"duration"`
	Day       string `json:"day,omitempty"`
}

func (b Break) EntityID() int64 { return b.ID }

func (b Break) WithEntityID(id int64) Break {
	b.ID = id
	return b
}
