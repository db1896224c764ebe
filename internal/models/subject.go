package models

// Subject represents a course taught in the timetable.
type Subject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"`
}

func (s Subject) EntityID() int64 { return s.ID }

func (s Subject) WithEntityID(id int64) Subject {
	s.ID = id
	return s
}
