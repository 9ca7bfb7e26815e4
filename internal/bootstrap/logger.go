package bootstrap

import (
	"log/slog"

	"github.com/geoquest/GeoQuest_Go/internal/config"
	"github.com/geoquest/GeoQuest_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application config
// and logs the startup banner.
func SetupLogger(cfg *config.Config) {
	// Source locations only help while developing
	addSource := !cfg.IsProduction()

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingGeoQuest,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"gemini_model", cfg.GeminiModel,
		"auto_migrate", cfg.AutoMigrate)
}
