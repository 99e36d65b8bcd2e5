package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Item database metrics
var (
	ResolverRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolverRequests,
			Help: HelpTextResolverRequests,
		},
		[]string{LabelCategory, LabelOutcome},
	)

	ResolverCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolverCacheHits,
			Help: HelpTextResolverCacheHits,
		},
	)

	ResolverCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolverCacheMisses,
			Help: HelpTextResolverCacheMisses,
		},
	)

	DegradedIngredients = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDegradedIngredients,
			Help: HelpTextDegradedIngredients,
		},
	)
)

// Crafting metrics
var (
	CraftingMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftingMutations,
			Help: HelpTextCraftingMutations,
		},
		[]string{LabelOperation},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelOperation},
	)
)
