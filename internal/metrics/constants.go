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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameSSEClients         = "sse_clients_connected"
)

// Inventory metric names
const (
	MetricNameInventoryOperations = "inventory_operations_total"
	MetricNameInventoryItems      = "inventory_items"
	MetricNameInventoryValue      = "inventory_value_total"
	MetricNameCategoryItems       = "inventory_category_items"
	MetricNameSearchesPerformed   = "searches_performed_total"
	MetricNameSearchCacheHits     = "search_cache_hits_total"
	MetricNameSearchCacheMisses   = "search_cache_misses_total"
	MetricNameCountDrift          = "inventory_count_drift_total"
	MetricNameReportsExported     = "reports_exported_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// Inventory metric help text
const (
	HelpTextInventoryOperations = "Total number of inventory operations by operation and result"
	HelpTextInventoryItems      = "Current number of items in the inventory"
	HelpTextInventoryValue      = "Current total value of all items"
	HelpTextCategoryItems       = "Current item count per category"
	HelpTextSearchesPerformed   = "Total number of searches performed"
	HelpTextSearchCacheHits     = "Total number of searches answered from the cache"
	HelpTextSearchCacheMisses   = "Total number of searches computed from the store"
	HelpTextCountDrift          = "Total number of audits that found category count drift"
	HelpTextReportsExported     = "Total number of reports exported by type"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelCategory  = "category"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// PathUnmatched labels requests that matched no route, keeping label cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
