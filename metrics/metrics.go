package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaking_explorer"

type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	SimulatedDelay     prometheus.Histogram
	InvalidAddresses   prometheus.Counter
	OverviewBroadcasts *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers collectors on a fresh registry so several instances can live in one process
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "API requests by route and status code.",
		}, []string{"route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		SimulatedDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_simulated_delay_seconds",
			Help:      "Artificial latency added to data source calls.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 15),
		}),
		InvalidAddresses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_address_lookups_total",
			Help:      "Reward lookups rejected for a malformed address.",
		}),
		OverviewBroadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overview_broadcasts_total",
			Help:      "Overview snapshots published, by result.",
		}, []string{"result"}),
		gatherer: registry,
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.SimulatedDelay,
		m.InvalidAddresses,
		m.OverviewBroadcasts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
