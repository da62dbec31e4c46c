package internal

import (
	"classroom-relay/observability"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedRooms int

func (f fixedRooms) RoomCount() int { return int(f) }

func noopWS(http.ResponseWriter, *http.Request) {}

func TestNewMux_Health(t *testing.T) {
	req := require.New(t)
	monitoring := observability.NewMonitoringManager(slog.Default())
	monitoring.IncrConnections()
	mux := NewMux(slog.Default(), noopWS, fixedRooms(3), monitoring)

	rec := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "http://classroom.test")
	mux.ServeHTTP(rec, request)

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	var body StatusResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("ok", body.Status)
	req.Equal(3, body.Rooms)
	req.Equal(int64(1), body.Connections)
	req.False(body.Timestamp.IsZero())
}

func TestNewMux_Health_RejectsWrites(t *testing.T) {
	mux := NewMux(slog.Default(), noopWS, fixedRooms(0), observability.NewMonitoringManager(slog.Default()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/health", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewMux_Metrics(t *testing.T) {
	req := require.New(t)
	mux := NewMux(slog.Default(), noopWS, fixedRooms(2), observability.NewMonitoringManager(slog.Default()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "relay_rooms 2")
}
