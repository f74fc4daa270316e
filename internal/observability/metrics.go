package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_landing_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_landing_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_landing_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// PageRenders tracks composed landing page renders per template
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_landing_page_renders_total",
			Help: "Number of landing page compositions",
		},
		[]string{"template", "status"},
	)

	// LeadSubmissions tracks lead intake outcomes
	LeadSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_landing_lead_submissions_total",
			Help: "Number of lead submissions",
		},
		[]string{"status"},
	)

	// AnalyticsEmissions tracks fire-and-forget conversion events per collector
	AnalyticsEmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_landing_analytics_emissions_total",
			Help: "Number of analytics conversion emissions",
		},
		[]string{"collector", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_landing_active_connections",
			Help: "Number of active connections",
		},
	)
)
