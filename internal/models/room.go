package models

// Room represents a bookable classroom or lab.
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

func (r Room) EntityID() int64 { return r.ID }

func (r Room) WithEntityID(id int64) Room {
	r.ID = id
	return r
}
