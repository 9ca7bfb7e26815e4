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

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseSize,
			Help:    HelpTextHTTPResponseSize,
			Buckets: ResponseSizeBuckets,
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

// Care Metrics
var (
	CareVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareVerifications,
			Help: HelpTextCareVerifications,
		},
		[]string{LabelOutcome},
	)

	CareXPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareXPAwarded,
			Help: HelpTextCareXPAwarded,
		},
		[]string{LabelAction},
	)

	PerceptionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePerceptionDuration,
			Help:    HelpTextPerceptionDuration,
			Buckets: PerceptionLatencyBuckets,
		},
	)

	ContextDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContextDegraded,
			Help: HelpTextContextDegraded,
		},
		[]string{LabelSource},
	)

	WeatherCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeatherCacheHits,
			Help: HelpTextWeatherCacheHits,
		},
	)

	// Security metrics
	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedRequests,
			Help: HelpTextRateLimitedRequests,
		},
	)

	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)
)
