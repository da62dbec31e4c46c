package observability

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.Default())
	mm.IncrConnections()
	mm.IncrEventsReceived()
	mm.IncrEventsReceived()
	mm.IncrDeliveriesDropped()

	rec := httptest.NewRecorder()
	MetricsHandler(mm, func() int { return 4 }).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Contains(string(body), "relay_connections 1")
	req.Contains(string(body), "relay_events_received_total 2")
	req.Contains(string(body), "relay_deliveries_dropped_total 1")
	req.Contains(string(body), "relay_rooms 4")
}
