package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/geoquest/GeoQuest_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	Version     string
	LogLevel    string
	LogFormat   string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	AutoMigrate       bool

	APIKey string // API key for authentication

	GeminiAPIKey      string
	GeminiModel       string
	PerceptionTimeout time.Duration

	ImageKitPrivateKey string
	ImageKitUploadURL  string
	ImageKitFolder     string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	WeatherTimeout     time.Duration
	WeatherCacheTTL    time.Duration

	DiscordWebhookURL string

	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),

		APIKey: getEnv("API_KEY", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", DefaultGeminiModel),
		PerceptionTimeout: getEnvAsDuration("PERCEPTION_TIMEOUT", DefaultPerceptionTimeout),

		ImageKitPrivateKey: getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		ImageKitUploadURL:  getEnv("IMAGEKIT_UPLOAD_URL", DefaultImageKitUploadURL),
		ImageKitFolder:     getEnv("IMAGEKIT_FOLDER", DefaultImageKitFolder),

		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", DefaultOpenWeatherBaseURL),
		WeatherTimeout:     getEnvAsDuration("WEATHER_TIMEOUT", DefaultWeatherTimeout),
		WeatherCacheTTL:    getEnvAsDuration("WEATHER_CACHE_TTL", DefaultWeatherCacheTTL),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),

		MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	loadDatabase(cfg)

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadDatabase loads only the database settings, for tools that never serve traffic
func LoadDatabase() *Config {
	_ = godotenv.Load()

	cfg := &Config{Environment: getEnv("ENVIRONMENT", DefaultEnvironment)}
	loadDatabase(cfg)
	return cfg
}

func loadDatabase(cfg *Config) {
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = getEnv("DB_PASSWORD", "postgres")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBName = getEnv("DB_NAME", "geoquest")
	cfg.DBMaxConns = getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns)
	cfg.DBMaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime)
	cfg.DBMaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime)
	cfg.AutoMigrate = getEnvAsBool("AUTO_MIGRATE", true)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns defaultValue when the variable is unset or not a Go duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// PoolSettings returns the connection pool settings for the configured database
func (c *Config) PoolSettings() database.PoolSettings {
	return database.PoolSettings{
		ConnString:      c.GetDBConnString(),
		MaxConns:        c.DBMaxConns,
		MaxConnIdleTime: c.DBMaxConnIdleTime,
		MaxConnLifetime: c.DBMaxConnLifetime,
	}
}

// GetAdminConnString returns a connection string for the server's maintenance database
func (c *Config) GetAdminConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
	)
}

// IsProduction reports whether the service runs in the prod environment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}
