package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

// Store keys. Entity collections share the timetable namespace; the current
// user deliberately stays unscoped, matching what dashboard clients have
// always persisted under.
const (
	KeyFaculty       = "timetable:faculty"
	KeyRooms         = "timetable:rooms"
	KeySubjects      = "timetable:subjects"
	KeyBreaks        = "timetable:breaks"
	KeyPracticals    = "timetable:practicals"
	KeyLeaveRequests = "timetable:leave_requests"
	KeyTimetable     = "timetable:published_timetable"
	KeyUsers         = "timetable:users"
	KeyCurrentUser   = "currentUser"
)

// SeedDefaults writes a deterministic default for every key that has no
// persisted value yet: empty collections, a normalized empty grid, and the
// stock login accounts. Existing values are never overwritten.
func (s *Store) SeedDefaults(ctx context.Context) error {
	accounts, err := defaultAccounts()
	if err != nil {
		return fmt.Errorf("build default accounts: %w", err)
	}

	seeds := []struct {
		key   string
		value interface{}
	}{
		{KeyFaculty, []models.Faculty{}},
		{KeyRooms, []models.Room{}},
		{KeySubjects, []models.Subject{}},
		{KeyBreaks, []models.Break{}},
		{KeyPracticals, []models.Practical{}},
		{KeyLeaveRequests, []models.LeaveRequest{}},
		{KeyTimetable, models.Timetable{Grid: models.EmptyGrid()}},
		{KeyUsers, accounts},
	}

	for _, seed := range seeds {
		_, exists, err := s.Get(ctx, seed.key)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		raw, err := json.Marshal(seed.value)
		if err != nil {
			return fmt.Errorf("encode seed %s: %w", seed.key, err)
		}
		if err := s.Put(ctx, seed.key, raw); err != nil {
			return err
		}
		s.logger.Debug("seeded default value", zap.String("key", seed.key))
	}
	return nil
}

func defaultAccounts() ([]models.LocalAccount, error) {
	stock := []struct {
		username, password, role, name, email string
	}{
		{"admin", "admin123", models.RoleAdmin, "System Administrator", "admin@college.edu"},
		{"faculty1", "faculty123", models.RoleFaculty, "John Doe", "john.doe@college.edu"},
		{"student1", "student123", models.RoleStudent, "Jane Smith", "jane.smith@college.edu"},
	}

	accounts := make([]models.LocalAccount, 0, len(stock))
	for i, u := range stock {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, models.LocalAccount{
			User: models.User{
				ID:       int64(i + 1),
				Username: u.username,
				Role:     u.role,
				Name:     u.name,
				Email:    u.email,
			},
			PasswordHash: string(hash),
		})
	}
	return accounts, nil
}
