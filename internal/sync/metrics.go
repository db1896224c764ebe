package sync

import (
	"time"

	"github.com/smart-timetable/dashboard-api/internal/models"
)

// Metrics receives the syncer's operational signals. The Prometheus
// implementation lives in the service layer; tests use NopMetrics.
type Metrics interface {
	SetMode(mode models.Mode)
	ObserveRemote(entity, op string, elapsed time.Duration, success bool)
	RecordFallback(entity string)
}

type nopMetrics struct{}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics { return nopMetrics{} }

func (nopMetrics) SetMode(models.Mode)                               {}
func (nopMetrics) ObserveRemote(string, string, time.Duration, bool) {}
func (nopMetrics) RecordFallback(string)                             {}
