package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

// Generic collection verbs. These satisfy the store.Doer capability used by
// remote-backed entity stores.

// List GETs a collection resource into out.
func (c *Client) List(ctx context.Context, path string, out interface{}) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out)
	return err
}

// Create POSTs a record and returns the identifier assigned upstream. The
// scheduling service answers creates with the bare numeric id as data.
func (c *Client) Create(ctx context.Context, path string, body interface{}) (int64, error) {
	var id int64
	if _, err := c.do(ctx, http.MethodPost, path, body, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update PUTs a record at its identifier.
func (c *Client) Update(ctx context.Context, path string, id int64, body interface{}) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", path, id), body, nil)
	return err
}

// Delete removes a record by identifier.
func (c *Client) Delete(ctx context.Context, path string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil)
	return err
}

// Single-shot operations.

// PublishedTimetable fetches the currently published timetable; nil data
// means none is published.
func (c *Client) PublishedTimetable(ctx context.Context) (*models.Timetable, error) {
	var timetable *models.Timetable
	if _, err := c.do(ctx, http.MethodGet, "/api/timetable", nil, &timetable); err != nil {
		return nil, err
	}
	return timetable, nil
}

// GenerateTimetable asks the optimizer for fresh timetable options.
func (c *Client) GenerateTimetable(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	var result models.GenerateResult
	if _, err := c.do(ctx, http.MethodPost, "/api/generate-timetable", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PublishTimetable marks one generated timetable as the published one.
func (c *Client) PublishTimetable(ctx context.Context, timetableID int64) error {
	body := struct {
		TimetableID int64 `json:"timetable_id"`
	}{TimetableID: timetableID}
	_, err := c.do(ctx, http.MethodPost, "/api/publish-timetable", body, nil)
	return err
}

// AutoReschedule regenerates and republishes the timetable around an
// approved leave. The timetable is nil when the service answers with a
// bare confirmation.
func (c *Client) AutoReschedule(ctx context.Context, leaveRequestID int64) (*models.RescheduleOutcome, error) {
	body := struct {
		LeaveRequestID int64 `json:"leave_request_id"`
	}{LeaveRequestID: leaveRequestID}

	var timetable *models.Timetable
	message, err := c.do(ctx, http.MethodPost, "/api/auto-reschedule", body, &timetable)
	if err != nil {
		return nil, err
	}
	return &models.RescheduleOutcome{Timetable: timetable, Message: message}, nil
}

// Login authenticates against the scheduling service and returns the user
// record.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Statistics fetches the dashboard's headline counts.
func (c *Client) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if _, err := c.do(ctx, http.MethodGet, "/api/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
