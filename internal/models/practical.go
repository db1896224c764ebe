package models

// Practical is a double-period lab session. Like breaks, practicals live
// only in the local store and travel to the optimizer inside the generate
// request.
type Practical struct {
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Faculty     string `json:"faculty"`
	Room        string `json:"room"`
	Duration    int    `json:"duration"`
	Description string `json:"description,omitempty"`
}

func (p Practical) EntityID() int64 { return p.ID }

func (p Practical) WithEntityID(id int64) Practical {
	p.ID = id
	return p
}
