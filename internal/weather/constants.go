package weather

import "time"

const (
	// DefaultBaseURL is the OpenWeatherMap current-conditions API root
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultCacheTTL is how long a coordinate's summary is reused
	DefaultCacheTTL = 10 * time.Minute

	// DefaultCacheSize bounds the number of cached coordinates
	DefaultCacheSize = 1024

	// coordinatePrecision rounds coordinates to roughly 1km for cache keys
	coordinatePrecision = 2

	currentWeatherPath = "/weather"
	unitsMetric        = "metric"
)
