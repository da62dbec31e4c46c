package workers

import (
	"classroom-relay/domain"
	"classroom-relay/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// RoomStats is what the heartbeat logs about the relay itself.
type RoomStats interface {
	RoomCount() int
	RoomIDs() []domain.RoomID
	ConnectionCount() int
}

// SampleFunc reads CPU, RSS and OS status of the running process.
type SampleFunc func() (observability.ProcessStats, error)

// HeartbeatWorker samples the process every interval and publishes the
// result to the monitoring manager.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	rooms      RoomStats
	interval   time.Duration
	sample     SampleFunc
}

func NewHeartbeatWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	rooms RoomStats,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:        log,
		monitoring: monitoring,
		rooms:      rooms,
		interval:   interval,
	}
}

// WithSampler replaces the gopsutil sampler.
func (w *HeartbeatWorker) WithSampler(sample SampleFunc) *HeartbeatWorker {
	w.sample = sample
	return w
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	if w.sample == nil {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return err
		}
		w.sample = selfSampler(p)
	}

	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat()
		}
	}
}

func (w *HeartbeatWorker) beat() {
	stats, err := w.sample()
	if err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
		return
	}
	w.monitoring.UpdateProcess(stats)

	latest := w.monitoring.GetLatest()
	w.log.Debug("Heartbeat",
		"rooms", w.rooms.RoomCount(),
		"room_ids", w.rooms.RoomIDs(),
		"connections", w.rooms.ConnectionCount(),
		"events_received", latest.EventsReceived,
		"events_dropped", latest.EventsDropped,
		"deliveries_dropped", latest.DeliveriesDropped,
		"cpu", stats.CpuPercent,
		"rss", stats.RssBytes,
	)
}

func selfSampler(p *process.Process) SampleFunc {
	return func() (observability.ProcessStats, error) {
		memInfo, err := p.MemoryInfo()
		if err != nil {
			return observability.ProcessStats{}, err
		}
		cpuPercent, err := p.CPUPercent()
		if err != nil {
			return observability.ProcessStats{}, err
		}
		status, err := p.Status()
		if err != nil {
			return observability.ProcessStats{}, err
		}
		return observability.ProcessStats{
			CpuPercent: cpuPercent,
			RssBytes:   memInfo.RSS,
			Status:     status,
			SampledAt:  time.Now().UTC(),
		}, nil
	}
}
