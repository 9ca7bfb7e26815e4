package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty before the service starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"GEMINI_API_KEY",
	"IMAGEKIT_PRIVATE_KEY",
}

// Placeholder values shipped in the example .env
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// warningRule inspects one variable and returns a warning, or "" when it is fine
type warningRule struct {
	key   string
	check func(value string) string
}

var warningRules = []warningRule{
	{"DB_PASSWORD", func(v string) string {
		if v == exampleDBPassword {
			return "DB_PASSWORD appears to be using the example value - please use a secure password"
		}
		return ""
	}},
	{"API_KEY", func(v string) string {
		if v == exampleAPIKey {
			return "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
		}
		return ""
	}},
	{"OPENWEATHER_API_KEY", func(v string) string {
		if v == "" {
			return "OPENWEATHER_API_KEY is not set - care checkups will run without weather context"
		}
		return ""
	}},
	{"PERCEPTION_TIMEOUT", func(v string) string {
		if v == "" {
			return ""
		}
		if d, err := time.ParseDuration(v); err != nil || d <= 0 {
			return fmt.Sprintf("PERCEPTION_TIMEOUT %q is not a positive duration - using %s", v, DefaultPerceptionTimeout)
		}
		return ""
	}},
	{"RATE_LIMIT_RPS", func(v string) string {
		if v == "" {
			return ""
		}
		if rps, err := strconv.ParseFloat(v, 64); err != nil || rps <= 0 {
			return fmt.Sprintf("RATE_LIMIT_RPS %q is not a positive number - API requests may be rejected", v)
		}
		return ""
	}},
	{"DISCORD_WEBHOOK_URL", func(v string) string {
		if v != "" && !strings.Contains(v, "/api/webhooks/") {
			return "DISCORD_WEBHOOK_URL does not look like a Discord webhook URL"
		}
		return ""
	}},
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	switch {
	case schemaVersion == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// will work but are probably not what the operator intended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, rule := range warningRules {
		if msg := rule.check(os.Getenv(rule.key)); msg != "" {
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}
