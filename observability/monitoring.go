package observability

import (
	"classroom-relay/contract"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var _ contract.DeliveryRecorder = (*MonitoringManager)(nil)

// ProcessStats is the latest sample taken by the heartbeat worker.
type ProcessStats struct {
	CpuPercent float64   `json:"cpuPercent"`
	RssBytes   uint64    `json:"rssBytes"`
	Status     string    `json:"processStatus,omitempty"`
	SampledAt  time.Time `json:"sampledAt"`
}

// MonitoringStats is everything the status surface reports besides the room count.
type MonitoringStats struct {
	Connections       int64  `json:"connections"`
	EventsReceived    uint64 `json:"eventsReceived"`
	EventsDropped     uint64 `json:"eventsDropped"`
	DeliveriesDropped uint64 `json:"deliveriesDropped"`
	ProcessStats
}

// MonitoringManager aggregates relay counters.
// Counters are atomic; the process sample is guarded by mu.
type MonitoringManager struct {
	log *slog.Logger
	mu  sync.RWMutex

	connections       int64
	eventsReceived    uint64
	eventsDropped     uint64
	deliveriesDropped uint64
	process           ProcessStats
}

// NewMonitoringManager starts every counter at zero.
func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) IncrConnections() {
	atomic.AddInt64(&mm.connections, 1)
}

func (mm *MonitoringManager) DecrConnections() {
	atomic.AddInt64(&mm.connections, -1)
}

func (mm *MonitoringManager) IncrEventsReceived() {
	atomic.AddUint64(&mm.eventsReceived, 1)
}

// IncrEventsDropped counts inbound frames that were unknown or malformed.
func (mm *MonitoringManager) IncrEventsDropped() {
	atomic.AddUint64(&mm.eventsDropped, 1)
}

// IncrDeliveriesDropped counts outbound events a connection refused.
func (mm *MonitoringManager) IncrDeliveriesDropped() {
	atomic.AddUint64(&mm.deliveriesDropped, 1)
}

// UpdateProcess stores the latest process sample.
func (mm *MonitoringManager) UpdateProcess(stats ProcessStats) {
	mm.mu.Lock()
	mm.process = stats
	mm.mu.Unlock()
	mm.log.Debug("Process sample updated", "cpu", stats.CpuPercent, "rss", stats.RssBytes, "status", stats.Status)
}

// GetLatest returns a consistent copy of the current counters.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	process := mm.process
	mm.mu.RUnlock()

	return MonitoringStats{
		Connections:       atomic.LoadInt64(&mm.connections),
		EventsReceived:    atomic.LoadUint64(&mm.eventsReceived),
		EventsDropped:     atomic.LoadUint64(&mm.eventsDropped),
		DeliveriesDropped: atomic.LoadUint64(&mm.deliveriesDropped),
		ProcessStats:      process,
	}
}
