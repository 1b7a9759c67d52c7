package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's Prometheus collectors on a private
// registry so tests can run servers side by side.
type metrics struct {
	registry *prometheus.Registry

	diagramsRendered *prometheus.CounterVec
	buildDuration    prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		diagramsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pourbaix_diagrams_rendered_total",
			Help: "Diagrams rendered by the HTTP server, per element system.",
		}, []string{"element"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pourbaix_diagram_build_seconds",
			Help:    "Wall time of diagram builds triggered over HTTP.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.diagramsRendered,
		m.buildDuration,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
