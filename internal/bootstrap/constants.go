package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGeoQuest    = "Starting GeoQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Adapter Initialization
// =============================================================================

const (
	// ExternalHTTPTimeout bounds a single outbound call when no context deadline applies
	ExternalHTTPTimeout = 30 * time.Second

	LogMsgNotifierDisabled   = "Discord webhook not configured, care notifications disabled"
	LogMsgWeatherDisabled    = "OpenWeather API key not configured, weather context will degrade"
	LogMsgAdaptersReady      = "External adapters initialized"
	ErrMsgFailedInitGemini   = "failed to initialize perception adapter"
	ErrMsgFailedInitImageKit = "failed to initialize media archiver"
	ErrMsgFailedInitDiscord  = "failed to initialize discord notifier"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgWaitingNotifications = "Waiting for pending notifications..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Service names for shutdown logging
	ServiceNameCare = "care"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
