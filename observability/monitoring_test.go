package observability

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.IncrConnections()
			mm.IncrEventsReceived()
			mm.IncrEventsReceived()
			mm.IncrEventsDropped()
			mm.IncrDeliveriesDropped()
		}()
	}
	wg.Wait()
	mm.DecrConnections()

	stats := mm.GetLatest()
	req.Equal(int64(49), stats.Connections)
	req.Equal(uint64(100), stats.EventsReceived)
	req.Equal(uint64(50), stats.EventsDropped)
	req.Equal(uint64(50), stats.DeliveriesDropped)
}

func TestMonitoringManager_UpdateProcess(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())
	at := time.Now()

	mm.UpdateProcess(ProcessStats{CpuPercent: 12.5, RssBytes: 4096, Status: "R", SampledAt: at})

	stats := mm.GetLatest()
	req.Equal(12.5, stats.CpuPercent)
	req.Equal(uint64(4096), stats.RssBytes)
	req.Equal(at, stats.SampledAt)
}

func TestMonitoringManager_UpdateProcess_LogsSample(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mm := NewMonitoringManager(log)

	mm.UpdateProcess(ProcessStats{CpuPercent: 3, RssBytes: 2048, Status: "S"})

	req.Contains(out.String(), "Process sample updated")
	req.Contains(out.String(), "rss=2048")
}
