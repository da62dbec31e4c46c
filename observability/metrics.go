package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	connectionsDesc = prometheus.NewDesc("relay_connections", "Live websocket connections.", nil, nil)
	receivedDesc    = prometheus.NewDesc("relay_events_received_total", "Inbound frames read from peers.", nil, nil)
	droppedDesc     = prometheus.NewDesc("relay_events_dropped_total", "Inbound frames dropped as unknown or malformed.", nil, nil)
	undeliveredDesc = prometheus.NewDesc("relay_deliveries_dropped_total", "Outbound events a connection could not take.", nil, nil)
	rssDesc         = prometheus.NewDesc("relay_process_rss_bytes", "Resident memory at the last heartbeat.", nil, nil)
	cpuDesc         = prometheus.NewDesc("relay_process_cpu_percent", "CPU usage at the last heartbeat.", nil, nil)
)

var _ prometheus.Collector = (*MonitoringManager)(nil)

func (mm *MonitoringManager) Describe(ch chan<- *prometheus.Desc) {
	ch <- connectionsDesc
	ch <- receivedDesc
	ch <- droppedDesc
	ch <- undeliveredDesc
	ch <- rssDesc
	ch <- cpuDesc
}

// Collect reads one consistent snapshot per scrape.
func (mm *MonitoringManager) Collect(ch chan<- prometheus.Metric) {
	stats := mm.GetLatest()
	ch <- prometheus.MustNewConstMetric(connectionsDesc, prometheus.GaugeValue, float64(stats.Connections))
	ch <- prometheus.MustNewConstMetric(receivedDesc, prometheus.CounterValue, float64(stats.EventsReceived))
	ch <- prometheus.MustNewConstMetric(droppedDesc, prometheus.CounterValue, float64(stats.EventsDropped))
	ch <- prometheus.MustNewConstMetric(undeliveredDesc, prometheus.CounterValue, float64(stats.DeliveriesDropped))
	ch <- prometheus.MustNewConstMetric(rssDesc, prometheus.GaugeValue, float64(stats.RssBytes))
	ch <- prometheus.MustNewConstMetric(cpuDesc, prometheus.GaugeValue, stats.CpuPercent)
}

// MetricsHandler serves the relay counters and the active room count in the
// Prometheus text format. Each call builds its own registry.
func MetricsHandler(mm *MonitoringManager, rooms func() int) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(mm)
	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "relay_rooms",
		Help: "Rooms with at least one participant.",
	}, func() float64 {
		return float64(rooms())
	}))
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
