package care

import "time"

// Reward tiers
const (
	XPRewardTaskComplete = 50
	XPRewardDailyCheckin = 20
)

// Context assembly
const (
	HistoryLimit             = 3
	NoHistoryPlaceholder     = "No previous care history."
	NoEnvironmentPlaceholder = "Weather data unavailable."
	historyDateLayout        = "2006-01-02"
)

// Care log listing bounds
const (
	DefaultCareLogLimit = 10
	MaxCareLogLimit     = 50
)

// Defaults used when Config leaves a field zero
const (
	DefaultPerceptionTimeout  = 30 * time.Second
	DefaultEnvironmentTimeout = 3 * time.Second
	DefaultArchiveFolder      = "/geoquest/care_logs"
)

// Notification dispatch
const (
	notifyTimeout   = 10 * time.Second
	notifyWorkers   = 2
	notifyQueueSize = 100
)

// Submitted photo types
const (
	MimeTypeJPEG        = "image/jpeg"
	MimeTypeOctetStream = "application/octet-stream"
	mimeTypeImagePrefix = "image/"
)

// Metric outcome labels
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
	OutcomeServerError   = "server_error"

	ContextSourceHistory     = "history"
	ContextSourceEnvironment = "environment"
)

// Log messages
const (
	LogMsgHistoryUnavailable     = "Care history unavailable, continuing without it"
	LogMsgEnvironmentUnavailable = "Environmental context unavailable, continuing without it"
	LogMsgTaskNotResolved        = "Referenced care task not found for plant, recording check-in"
	LogMsgCareVerified           = "Care verified"
	LogMsgNotifyFailed           = "Failed to send care verification notification"
)
