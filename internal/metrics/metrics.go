package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/HomeInventory_Go/internal/domain"
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)

	SSEClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)

// Inventory Metrics
var (
	InventoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryOperations,
			Help: HelpTextInventoryOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	InventoryItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInventoryItems,
			Help: HelpTextInventoryItems,
		},
	)

	InventoryValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInventoryValue,
			Help: HelpTextInventoryValue,
		},
	)

	CategoryItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCategoryItems,
			Help: HelpTextCategoryItems,
		},
		[]string{LabelCategory},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchCacheHits,
			Help: HelpTextSearchCacheHits,
		},
	)

	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchCacheMisses,
			Help: HelpTextSearchCacheMisses,
		},
	)

	CountDrift = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCountDrift,
			Help: HelpTextCountDrift,
		},
	)

	ReportsExported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReportsExported,
			Help: HelpTextReportsExported,
		},
		[]string{LabelType},
	)
)

// RecordOperation counts one inventory operation, labelled by whether it failed
func RecordOperation(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	InventoryOperations.WithLabelValues(operation, result).Inc()
}

// RecordInventory refreshes the inventory gauges from a consistent view of the store
func RecordInventory(items []domain.Item, categories []domain.Category) {
	var total float64
	for _, item := range items {
		total += item.Value()
	}
	InventoryItems.Set(float64(len(items)))
	InventoryValue.Set(total)

	for _, c := range categories {
		CategoryItems.WithLabelValues(c.Name).Set(float64(c.ItemCount))
	}
}
