package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgMissingUserID   = "Missing or invalid X-User-ID header"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Client exceeded rate limit"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgIdentityRejected = "Request rejected without user identity"
	LogMsgBadTrustedProxy  = "Ignoring unparseable trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderUserID         = "X-User-ID"
	HeaderRequestID      = "X-Request-ID"
	HeaderCookie         = "Cookie"
	HeaderCacheControl   = "Cache-Control"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRetryAfter     = "Retry-After"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// PublicPaths are path prefixes that bypass authentication and rate limiting
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// RedactedValue replaces credential headers in debug logs
const RedactedValue = "[REDACTED]"

// quietPaths are served without request logging
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

// apiPathPrefix marks per-user responses that must not be cached
const apiPathPrefix = "/api/"

// Detector and limiter tuning
const (
	failedAuthAlertThreshold = 5
	detectorWindow           = 5 * time.Minute

	// rateLimitedLogEvery throttles the high-rate alert per client
	rateLimitedLogEvery = 100

	clientLimiterCacheSize = 10000
	clientLimiterIdleTTL   = 10 * time.Minute
)

// requestBodyOverhead is the slack above the photo limit left for the other multipart fields
const requestBodyOverhead = 1 << 20

const readHeaderTimeout = 5 * time.Second
