package models

// HealthStatus is the scheduling service's unauthenticated status document.
// It is not wrapped in the response envelope.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Service   string `json:"service,omitempty"`
	Database  string `json:"database,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Healthy reports an affirmative probe result.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
