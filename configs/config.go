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
// configuration file. Environment variables override its values.
type FileConfig struct {
	BaseURL    string `yaml:"base_url,omitempty"`
	ListenAddr string `yaml:"listen_addr,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
}

// Config holds the application configuration, merged from the optional file
// and environment variables. Fields are loaded from environment variables
// with the prefix "POLARSTEPS_".
type Config struct {
	// Config file path (loaded first from env).
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// RememberToken is the remember_token cookie of a logged-in
	// polarsteps.com session. Without it most profiles resolve as not found.
	RememberToken string `envconfig:"REMEMBER_TOKEN"`
	BaseURL       string `envconfig:"BASE_URL" default:"https://api.polarsteps.com"`

	ListenAddr        string        `envconfig:"LISTEN_ADDR" default:":8080"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFile receives log output in stdio mode, where stderr may be
	// swallowed and stdout belongs to the protocol.
	LogFile string `envconfig:"LOG_FILE" default:"/tmp/polarsteps-mcp.log"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
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

// Load reads environment variables, then overlays the YAML file if one is
// configured. Precedence is env var > file value > struct default.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("polarsteps", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath != "" {
		raw, err := os.ReadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
		}
		var fileCfg FileConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
		}
		// File values fill in only where the env var was not set explicitly,
		// so the environment keeps precedence.
		overlay(&cfg.BaseURL, fileCfg.BaseURL, "POLARSTEPS_BASE_URL")
		overlay(&cfg.ListenAddr, fileCfg.ListenAddr, "POLARSTEPS_LISTEN_ADDR")
		overlay(&cfg.LogLevel, fileCfg.LogLevel, "POLARSTEPS_LOG_LEVEL")
		overlay(&cfg.LogFile, fileCfg.LogFile, "POLARSTEPS_LOG_FILE")
	}

	return &cfg, nil
}

func overlay(dst *string, fileValue, envKey string) {
	if fileValue == "" {
		return
	}
	if _, set := os.LookupEnv(envKey); set {
		return
	}
	*dst = fileValue
}
