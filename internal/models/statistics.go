package models

// Statistics summarizes the dashboard's headline counts.
type Statistics struct {
	FacultyCount       int  `json:"faculty_count"`
	RoomCount          int  `json:"room_count"`
	SubjectCount       int  `json:"subject_count"`
	PendingLeaves      int  `json:"pending_leaves"`
	TimetablePublished bool `json:"timetable_published"`
}
