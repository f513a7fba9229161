package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for relay-specific environment variables,
// e.g. RELAY_SERVER_LOG_LEVEL.
const EnvPrefix = "RELAY"

// ConfigFileEnv names the environment variable that points at an optional
// YAML configuration file.
const ConfigFileEnv = "RELAY_CONFIG_FILE"

// ErrMissingAPIKey is returned when require_api_key is set and no real Gemini
// API key was provided.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required but not set")

// envBindings maps configuration keys to the environment variables that feed
// them, in lookup order. The unprefixed names are the public contract used by
// hosting platforms and existing deployments.
var envBindings = map[string][]string{
	"server.port":                 {"RELAY_SERVER_PORT", "PORT"},
	"llm.gemini_api_key":          {"RELAY_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
	"llm.require_api_key":         {"RELAY_LLM_REQUIRE_API_KEY", "REQUIRE_API_KEY"},
	"server.log_level":            {"RELAY_SERVER_LOG_LEVEL"},
	"server.log_format":           {"RELAY_SERVER_LOG_FORMAT"},
	"server.metrics_enabled":      {"RELAY_SERVER_METRICS_ENABLED"},
	"server.cors_allowed_origins": {"RELAY_SERVER_CORS_ALLOWED_ORIGINS"},
	"server.shutdown_timeout":     {"RELAY_SERVER_SHUTDOWN_TIMEOUT"},
	"llm.model_name":              {"RELAY_LLM_MODEL_NAME"},
	"llm.timeout":                 {"RELAY_LLM_TIMEOUT"},
}

// flagBindings maps command-line flag names to configuration keys.
var flagBindings = map[string]string{
	"port":      "server.port",
	"log-level": "server.log_level",
	"model":     "llm.model_name",
}

// LoadOptions customizes where Load looks for configuration.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file. When empty, RELAY_CONFIG_FILE is
	// consulted; when both are empty no file is read.
	ConfigFile string

	// Flags, when non-nil, is consulted for the flags registered by
	// RegisterFlags. Flags that were set on the command line take precedence
	// over every other source.
	Flags *pflag.FlagSet
}

// RegisterFlags adds the server's configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML configuration file")
	fs.Int("port", 5000, "port to listen on")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("model", DefaultModelName, "Gemini model used to answer questions")
}

// Load configuration from flags, environment variables and optionally a
// config file. Flags take precedence over environment variables, which take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagBindings {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
		if opts.ConfigFile == "" {
			if flag := opts.Flags.Lookup("config"); flag != nil {
				opts.ConfigFile = flag.Value.String()
			}
		}
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(ConfigFileEnv)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if cfg.LLM.RequireAPIKey && cfg.UsesPlaceholderKey() {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.metrics_enabled", true)
	v.SetDefault("server.cors_allowed_origins", []string{})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("llm.gemini_api_key", PlaceholderAPIKey)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.timeout", time.Duration(0))
	v.SetDefault("llm.require_api_key", false)
}
