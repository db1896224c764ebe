package models

// Leave request lifecycle states.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest is a faculty absence request; approval triggers
// re-scheduling of the published timetable.
type LeaveRequest struct {
	ID          int64  `json:"id"`
	FacultyName string `json:"faculty_name"`
	Date        string `json:"date"`
	Period      string `json:"period"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (l LeaveRequest) EntityID() int64 { return l.ID }

func (l LeaveRequest) WithEntityID(id int64) LeaveRequest {
	l.ID = id
	return l
}
