package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/itz-Mayank/Environmental-Sustainability/logger"
)

// Monitor periodically pushes fresh readings to every connected stream
// client, together with that user's triggered alerts.
type Monitor struct {
	hub       *RealtimeHub
	snapshots *SnapshotService
	evaluator *AlertEvaluator
	interval  time.Duration
}

func NewMonitor(hub *RealtimeHub, snapshots *SnapshotService, evaluator *AlertEvaluator, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{hub: hub, snapshots: snapshots, evaluator: evaluator, interval: interval}
}

func (m *Monitor) Run(ctx context.Context) {
	log := logger.WithComponent("monitor")
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("monitor stopped")
			return
		case <-ticker.C:
			m.tick(log)
		}
	}
}

func (m *Monitor) tick(log zerolog.Logger) {
	readings := map[string]any{
		"aqi":     m.snapshots.AQI(),
		"water":   m.snapshots.Water(),
		"weather": m.snapshots.Weather(),
	}

	for _, userID := range m.hub.Users() {
		events, err := m.evaluator.EvaluateUser(userID)
		if err != nil {
			log.Error().Err(err).Uint("user_id", userID).Msg("alert evaluation failed")
			continue
		}
		m.hub.Broadcast(userID, map[string]any{
			"kind":     "reading.update",
			"readings": readings,
			"alerts":   events,
		})
	}
}
