package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Item database metric names
const (
	MetricNameResolverRequests    = "item_database_requests_total"
	MetricNameResolverCacheHits   = "item_database_cache_hits_total"
	MetricNameResolverCacheMisses = "item_database_cache_misses_total"
	MetricNameDegradedIngredients = "degraded_ingredients_total"
)

// Crafting metric names
const (
	MetricNameCraftingMutations   = "crafting_mutations_total"
	MetricNamePersistenceFailures = "persistence_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Item database metric help text
const (
	HelpTextResolverRequests    = "Total number of requests sent to the item database"
	HelpTextResolverCacheHits   = "Total number of item lookups served from cache"
	HelpTextResolverCacheMisses = "Total number of item lookups that missed the cache"
	HelpTextDegradedIngredients = "Total number of ingredients replaced by a placeholder"
)

// Crafting metric help text
const (
	HelpTextCraftingMutations   = "Total number of crafting list and owned ingredient mutations"
	HelpTextPersistenceFailures = "Total number of profile state load/save failures"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelCategory  = "category"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
)

// Outcome label values for item database requests
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Operation label values for persistence failures
const (
	OperationLoad = "load"
	OperationSave = "save"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"
