package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/geoquest/GeoQuest_Go/internal/metrics"
)

// ErrNotConfigured is returned when no API key was supplied
var ErrNotConfigured = errors.New("weather API key not configured")

// maxResponseBytes caps the body read from the provider
const maxResponseBytes = 64 << 10

// Config holds OpenWeatherMap client settings
type Config struct {
	APIKey    string
	BaseURL   string
	CacheTTL  time.Duration
	CacheSize int
}

// Client renders current conditions at a coordinate as a one-line summary
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      *summaryCache
}

// NewClient creates an OpenWeatherMap client. httpClient may be nil.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		cache:      newSummaryCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

// Summary returns e.g. "Light rain, 12°C, humidity 81%, wind 4.1 m/s".
// The caller bounds the call with ctx.
func (c *Client) Summary(ctx context.Context, latitude, longitude float64) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	if cached, ok := c.cache.Get(latitude, longitude); ok {
		metrics.WeatherCacheHits.Inc()
		return cached, nil
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("units", unitsMetric)
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+currentWeatherPath+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, gjson.GetBytes(body, "message").String())
	}

	summary, err := formatSummary(body)
	if err != nil {
		return "", err
	}
	c.cache.Set(latitude, longitude, summary)
	return summary, nil
}

func formatSummary(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errors.New("weather response is not valid JSON")
	}
	doc := gjson.ParseBytes(body)

	temp := doc.Get("main.temp")
	if temp.Type != gjson.Number {
		return "", errors.New("weather response has no temperature")
	}

	parts := make([]string, 0, 4)
	if desc := doc.Get("weather.0.description").String(); desc != "" {
		parts = append(parts, capitalize(desc))
	}
	parts = append(parts, fmt.Sprintf("%.0f°C", temp.Float()))
	if humidity := doc.Get("main.humidity"); humidity.Exists() {
		parts = append(parts, fmt.Sprintf("humidity %d%%", humidity.Int()))
	}
	if wind := doc.Get("wind.speed"); wind.Exists() {
		parts = append(parts, fmt.Sprintf("wind %.1f m/s", wind.Float()))
	}
	return strings.Join(parts, ", "), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
