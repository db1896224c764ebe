package sync

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/smart-timetable/dashboard-api/internal/models"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
)

// FacultyInput is the write payload for faculty records.
type FacultyInput struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject"`
	Email   string `json:"email" validate:"omitempty,email"`
}

func (in FacultyInput) model() models.Faculty {
	return models.Faculty{Name: in.Name, Subject: in.Subject, Email: in.Email}
}

// RoomInput is the write payload for rooms.
type RoomInput struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1"`
	Type     string `json:"type"`
}

func (in RoomInput) model() models.Room {
	return models.Room{Name: in.Name, Capacity: in.Capacity, Type: in.Type}
}

// SubjectInput is the write payload for subjects.
type SubjectInput struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code"`
	Credits int    `json:"credits" validate:"omitempty,min=1"`
}

func (in SubjectInput) model() models.Subject {
	return models.Subject{Name: in.Name, Code: in.Code, Credits: in.Credits}
}

// BreakInput is the write payload for recess windows.
type BreakInput struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	Duration  int    `json:"duration" validate:"omitempty,min=1"`
	Day       string `json:"day"`
}

func (in BreakInput) model() models.Break {
	return models.Break{Name: in.Name, StartTime: in.StartTime, Duration: in.Duration, Day: in.Day}
}

// PracticalInput is the write payload for lab sessions. Duration defaults
// to two periods, the length of every practical the optimizer schedules.
type PracticalInput struct {
	Subject     string `json:"subject" validate:"required"`
	Faculty     string `json:"faculty" validate:"required"`
	Room        string `json:"room" validate:"required"`
	Duration    int    `json:"duration" validate:"omitempty,min=1"`
	Description string `json:"description"`
}

func (in PracticalInput) model() models.Practical {
	duration := in.Duration
	if duration == 0 {
		duration = 2
	}
	return models.Practical{
		Subject:     in.Subject,
		Faculty:     in.Faculty,
		Room:        in.Room,
		Duration:    duration,
		Description: in.Description,
	}
}

// LeaveRequestInput is the write payload for leave requests. Older clients
// send the faculty name under "faculty", newer ones under "faculty_name";
// both are accepted.
type LeaveRequestInput struct {
	FacultyName string `json:"faculty_name"`
	Faculty     string `json:"faculty"`
	Date        string `json:"date" validate:"required"`
	Period      string `json:"period"`
	Reason      string `json:"reason"`
}

func (in LeaveRequestInput) model() models.LeaveRequest {
	name := in.FacultyName
	if name == "" {
		name = in.Faculty
	}
	return models.LeaveRequest{
		FacultyName: name,
		Date:        in.Date,
		Period:      in.Period,
		Reason:      in.Reason,
		Status:      models.LeaveStatusPending,
	}
}

type leaveStatusInput struct {
	Status string `validate:"required,oneof=pending approved rejected"`
}

// GenerateInput carries optimizer constraints. Breaks and practicals left
// empty are filled from the local store before the request goes out.
type GenerateInput struct {
	Constraints map[string]interface{} `json:"constraints"`
	Breaks      []models.Break         `json:"breaks"`
	Practicals  []models.Practical     `json:"practicals"`
}

func (s *Syncer) validateInput(input interface{}) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	return appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
