package config

import (
	"time"

	"github.com/geoquest/GeoQuest_Go/internal/logger"
)

// Defaults for optional settings
const (
	DefaultPort              = 8080
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = logger.LogLevelInfo
	DefaultLogFormat         = logger.LogFormatText
	DefaultVersion           = "dev"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultGeminiModel       = "gemini-flash-lite-latest"
	DefaultPerceptionTimeout = 30 * time.Second

	DefaultImageKitUploadURL = "https://upload.imagekit.io/api/v1/files/upload"
	DefaultImageKitFolder    = "/geoquest/care_logs"

	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultWeatherTimeout     = 3 * time.Second
	DefaultWeatherCacheTTL    = 10 * time.Minute

	DefaultMaxUploadBytes = 5 << 20
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
)
