package logger

// Accepted LOG_LEVEL values; anything else logs at info
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Accepted LOG_FORMAT values; anything but json is text
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const DefaultServiceName = "geoquest-api"

const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
