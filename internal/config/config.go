package config

import "time"

// PlaceholderAPIKey is used when no Gemini API key is configured. The Gemini
// API rejects it on the first call, so a relay running with it starts but
// every ask fails with a provider error.
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

// DefaultModelName is the Gemini model the relay asks by default.
const DefaultModelName = "models/gemini-2.5-flash"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	// MetricsEnabled exposes GET /metrics on the relay's own listener.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`

	// CORSAllowedOrigins enables CORS for browser clients when non-empty.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains the Gemini integration settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// Timeout bounds a single provider call. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// RequireAPIKey makes startup fail instead of falling back to
	// PlaceholderAPIKey.
	RequireAPIKey bool `mapstructure:"require_api_key"`
}

// UsesPlaceholderKey reports whether the relay is running without a real
// Gemini credential.
func (c *Config) UsesPlaceholderKey() bool {
	return c.LLM.GeminiAPIKey == PlaceholderAPIKey
}
