package telemetry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service's Prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	ReconcileTotal      *prometheus.CounterVec
	ReconcileErrorTotal *prometheus.CounterVec
	ReconcileDuration   prometheus.Histogram
	MatchedInstances    prometheus.Counter
	MissingInstances    prometheus.Counter
	RosterCacheTotal    *prometheus.CounterVec
	ImportedItemsTotal  prometheus.Counter
}

// NewMetrics creates and registers all collectors, plus the Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ReconcileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "figurine_reconcile_total",
				Help: "Number of reconciliations by source.",
			},
			[]string{"source"},
		),
		ReconcileErrorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "figurine_reconcile_error_total",
				Help: "Number of failed reconciliations by source.",
			},
			[]string{"source"},
		),
		ReconcileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "figurine_reconcile_duration_seconds",
				Help:    "Time taken to compute a reconciliation report.",
				Buckets: prometheus.DefBuckets,
			},
		),
		MatchedInstances: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "figurine_reconcile_matched_instances_total",
				Help: "Total number of required instances satisfied by an owned miniature.",
			},
		),
		MissingInstances: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "figurine_reconcile_missing_instances_total",
				Help: "Total number of required instances left unsatisfied.",
			},
		),
		RosterCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "figurine_roster_cache_total",
				Help: "Roster cache lookups by result (hit, miss).",
			},
			[]string{"result"},
		),
		ImportedItemsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "figurine_collection_imported_items_total",
				Help: "Total number of owned items imported into the collection.",
			},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ReconcileTotal,
		m.ReconcileErrorTotal,
		m.ReconcileDuration,
		m.MatchedInstances,
		m.MissingInstances,
		m.RosterCacheTotal,
		m.ImportedItemsTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
