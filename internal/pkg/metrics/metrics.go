// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bakery"

// ServerMetrics counts HTTP requests per route and status.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// ExportMetrics implements the export run observer.
type ExportMetrics struct {
	Runs           *prometheus.CounterVec
	OrdersExported prometheus.Counter
	LastSuccess    prometheus.Gauge
	now            func() float64
}

func NewExportMetrics(reg prometheus.Registerer, now func() float64) *ExportMetrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "export",
		Name:      "runs_total",
		Help:      "Export runs by outcome.",
	}, []string{"outcome"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "export",
		Name:      "orders_exported_total",
		Help:      "Orders handed over to the external system.",
	})
	last := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "export",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last committed export run.",
	})

	reg.MustRegister(runs, orders, last)
	return &ExportMetrics{Runs: runs, OrdersExported: orders, LastSuccess: last, now: now}
}

// ObserveExport records one run. Only committed runs count their orders.
func (m *ExportMetrics) ObserveExport(outcome string, orders int) {
	m.Runs.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.OrdersExported.Add(float64(orders))
		m.LastSuccess.Set(m.now())
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
