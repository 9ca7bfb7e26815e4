package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/geoquest/GeoQuest_Go/internal/care"
	"github.com/geoquest/GeoQuest_Go/internal/config"
	"github.com/geoquest/GeoQuest_Go/internal/media"
	"github.com/geoquest/GeoQuest_Go/internal/notify"
	"github.com/geoquest/GeoQuest_Go/internal/perception"
	"github.com/geoquest/GeoQuest_Go/internal/weather"
)

// InitializeCareService builds the external adapters and the care verification service.
// The Discord notifier is optional; every other adapter must initialize.
func InitializeCareService(ctx context.Context, cfg *config.Config, repos *Repositories) (care.Service, error) {
	httpClient := &http.Client{Timeout: ExternalHTTPTimeout}

	if cfg.OpenWeatherAPIKey == "" {
		slog.Warn(LogMsgWeatherDisabled)
	}
	environment := weather.NewClient(weather.Config{
		APIKey:   cfg.OpenWeatherAPIKey,
		BaseURL:  cfg.OpenWeatherBaseURL,
		CacheTTL: cfg.WeatherCacheTTL,
	}, httpClient)

	archiver, err := media.NewImageKitArchiver(cfg.ImageKitPrivateKey, cfg.ImageKitUploadURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitImageKit, err)
	}

	assessor, err := perception.NewGeminiAdapter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitGemini, err)
	}

	var notifier care.Notifier
	if cfg.DiscordWebhookURL == "" {
		slog.Info(LogMsgNotifierDisabled)
	} else {
		discord, err := notify.NewDiscordNotifier(cfg.DiscordWebhookURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitDiscord, err)
		}
		notifier = discord
	}

	slog.Info(LogMsgAdaptersReady,
		"gemini_model", cfg.GeminiModel,
		"weather_enabled", cfg.OpenWeatherAPIKey != "",
		"notifications_enabled", notifier != nil)

	return care.NewService(repos.Care, environment, archiver, assessor, notifier, care.Config{
		PerceptionTimeout:  cfg.PerceptionTimeout,
		EnvironmentTimeout: cfg.WeatherTimeout,
		ArchiveFolder:      cfg.ImageKitFolder,
	}), nil
}
