package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
)

// Care metric names
const (
	MetricNameCareVerifications  = "care_verifications_total"
	MetricNameCareXPAwarded      = "care_xp_awarded_total"
	MetricNamePerceptionDuration = "perception_duration_seconds"
	MetricNameContextDegraded    = "context_degraded_total"
	MetricNameWeatherCacheHits   = "weather_cache_hits_total"
)

// Security metric names
const (
	MetricNameRateLimitedRequests = "rate_limited_requests_total"
	MetricNameAuthFailures        = "auth_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
)

// Care metric help text
const (
	HelpTextCareVerifications  = "Care verification attempts by outcome"
	HelpTextCareXPAwarded      = "Total XP awarded by care verifications"
	HelpTextPerceptionDuration = "Latency of perception model calls in seconds"
	HelpTextContextDegraded    = "Verifications that fell back to placeholder context"
	HelpTextWeatherCacheHits   = "Weather summaries served from cache"
)

// Security metric help text
const (
	HelpTextRateLimitedRequests = "Requests rejected by the per-client rate limiter"
	HelpTextAuthFailures        = "Requests rejected for a missing or invalid API key"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelAction  = "action"
	LabelSource  = "source"
)

// UnmatchedRoute labels requests chi could not route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResponseSizeBuckets runs from an empty body to 1MiB
var ResponseSizeBuckets = []float64{0, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// PerceptionLatencyBuckets covers model calls, which run from sub-second to the timeout
var PerceptionLatencyBuckets = []float64{.25, .5, 1, 2, 4, 8, 15, 30, 60}
