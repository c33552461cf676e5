package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the optional YAML
// configuration file. Everything in it can also be set through the
// environment, which wins on conflict.
type FileConfig struct {
	Language      string   `yaml:"language"`
	DisabledTools []string `yaml:"disabled_tools"`
}

// Config holds the final application configuration, merged from the optional
// file and environment variables. Fields are loaded from environment
// variables with the prefix "TMDB_".
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// APIKey is the TMDB read access token. The serve command refuses to
	// start without it; the tools command works without one.
	APIKey     string `envconfig:"API_KEY"`
	APIBaseURL string `envconfig:"API_BASE_URL"`

	// Language is an optional default forwarded on every upstream request.
	Language string `envconfig:"LANGUAGE"`

	// DisabledTools removes catalog entries by name before the registry is
	// built. Comma-separated in the environment, a list in the file.
	DisabledTools []string `envconfig:"DISABLED_TOOLS"`

	Transport  string `envconfig:"TRANSPORT" default:"stdio"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration first from environment variables (to get the file
// path), then from the YAML file when one is configured, and finally
// processes environment variables again so they override file settings.
func Load() (*Config, error) {
	// 1. Load initial config from env (primarily to get ConfigFilePath).
	var initialCfg Config
	if err := envconfig.Process("tmdb", &initialCfg); err != nil {
		return nil, fmt.Errorf("failed to process initial environment variables: %w", err)
	}

	finalCfg := initialCfg

	// 2. Load config from the YAML file if a path is specified.
	if initialCfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(initialCfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", initialCfg.ConfigFilePath, err)
		}

		var fileCfg FileConfig
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
		slog.Info("Loaded configuration from file.", "path", initialCfg.ConfigFilePath)

		if fileCfg.Language != "" {
			finalCfg.Language = fileCfg.Language
		}
		if len(fileCfg.DisabledTools) > 0 {
			finalCfg.DisabledTools = fileCfg.DisabledTools
		}
	}

	// 3. Process environment variables again to allow overrides over file
	// settings. Fields without defaults are left untouched when the
	// variable is unset, so file values survive this pass.
	if err := envconfig.Process("tmdb", &finalCfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	return &finalCfg, nil
}
