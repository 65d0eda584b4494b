package services

import (
	"fmt"
	"time"

	"github.com/itz-Mayank/Environmental-Sustainability/metrics"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
)

// AlertEvent is one threshold crossing found during evaluation. Events are
// purely informational; nothing is delivered beyond the realtime stream.
type AlertEvent struct {
	AlertID   uint      `json:"alertId"`
	UserID    uint      `json:"userId"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Severity buckets by how far the reading exceeds the threshold.
func Severity(value, threshold float64) string {
	if threshold <= 0 {
		return "critical"
	}
	ratio := value / threshold
	switch {
	case ratio <= 1.2:
		return "low"
	case ratio <= 1.5:
		return "medium"
	case ratio <= 2.0:
		return "high"
	default:
		return "critical"
	}
}

// AlertEvaluator checks a user's configured alerts against current readings.
type AlertEvaluator struct {
	alerts    storage.AlertStore
	snapshots *SnapshotService
}

func NewAlertEvaluator(alerts storage.AlertStore, snapshots *SnapshotService) *AlertEvaluator {
	return &AlertEvaluator{alerts: alerts, snapshots: snapshots}
}

// EvaluateUser returns an event for every active alert whose category reading
// currently exceeds its threshold.
func (e *AlertEvaluator) EvaluateUser(userID uint) ([]AlertEvent, error) {
	alerts, err := e.alerts.ListAlertsByUser(userID)
	if err != nil {
		return nil, err
	}

	events := make([]AlertEvent, 0)
	for _, a := range alerts {
		if !a.Active {
			continue
		}
		value, ok := e.snapshots.PrimaryValue(a.Type)
		if !ok || value <= a.Threshold {
			continue
		}

		sev := Severity(value, a.Threshold)
		events = append(events, AlertEvent{
			AlertID:   a.ID,
			UserID:    a.UserID,
			Type:      a.Type,
			Value:     value,
			Threshold: a.Threshold,
			Severity:  sev,
			Message:   fmt.Sprintf("%s reading %.2f exceeds threshold %.2f", a.Type, value, a.Threshold),
			Timestamp: time.Now(),
		})
		metrics.AlertsTriggeredTotal.WithLabelValues(a.Type, sev).Inc()
	}
	return events, nil
}
