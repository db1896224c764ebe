package models

// Faculty represents one teaching staff record.
type Faculty struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// EntityID returns the record identifier.
func (f Faculty) EntityID() int64 { return f.ID }

// WithEntityID returns a copy carrying the assigned identifier.
func (f Faculty) WithEntityID(id int64) Faculty {
	f.ID = id
	return f
}
