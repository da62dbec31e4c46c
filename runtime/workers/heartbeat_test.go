package workers

import (
	"classroom-relay/domain"
	"classroom-relay/observability"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRooms struct {
	listed atomic.Bool
}

func (*fakeRooms) RoomCount() int       { return 2 }
func (*fakeRooms) ConnectionCount() int { return 5 }
func (f *fakeRooms) RoomIDs() []domain.RoomID {
	f.listed.Store(true)
	return []domain.RoomID{"math101", "bio"}
}

func TestHeartbeatWorker_PublishesSamples(t *testing.T) {
	req := require.New(t)
	monitoring := observability.NewMonitoringManager(slog.Default())
	var calls atomic.Int32
	rooms := &fakeRooms{}
	worker := NewHeartbeatWorker(slog.Default(), monitoring, rooms, 5*time.Millisecond).
		WithSampler(func() (observability.ProcessStats, error) {
			if calls.Add(1) == 1 {
				return observability.ProcessStats{}, errors.New("proc unavailable")
			}
			return observability.ProcessStats{CpuPercent: 1.5, RssBytes: 1024, Status: "S"}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Then a failed sample is skipped and the next one is published
	req.Eventually(func() bool {
		return monitoring.GetLatest().RssBytes == 1024
	}, time.Second, 5*time.Millisecond)
	req.Equal(1.5, monitoring.GetLatest().CpuPercent)
	// And the active rooms are listed in the heartbeat
	req.Eventually(rooms.listed.Load, time.Second, 5*time.Millisecond)

	cancel()
	req.NoError(<-done)
}
