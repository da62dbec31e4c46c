package internal

import (
	"classroom-relay/observability"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// RoomCounter is the read-only view of the registry used by /health.
type RoomCounter interface {
	RoomCount() int
}

// StatusResponse is the body of GET /health.
type StatusResponse struct {
	Status    string    `json:"status"`
	Rooms     int       `json:"rooms"`
	Timestamp time.Time `json:"timestamp"`
	observability.MonitoringStats
}

// NewMux exposes the websocket endpoint, the status surface and the
// Prometheus metrics. Only /health is cross-origin.
func NewMux(log *slog.Logger, ws http.HandlerFunc, rooms RoomCounter, monitoring *observability.MonitoringManager) *http.ServeMux {
	health := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws)
	mux.Handle("/metrics", observability.MetricsHandler(monitoring, rooms.RoomCount))
	mux.Handle("/health", health.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body := StatusResponse{
			Status:          "ok",
			Rooms:           rooms.RoomCount(),
			Timestamp:       time.Now().UTC(),
			MonitoringStats: monitoring.GetLatest(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Warn("Failed to write status", "error", err)
		}
	})))
	return mux
}

func NewHTTPServer(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
