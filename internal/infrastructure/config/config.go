package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server" toml:"server"`
	Logging     LogConfig         `yaml:"logging" toml:"logging"`
	CORS        CORSConfig        `yaml:"cors" toml:"cors"`
	Compression CompressionConfig `yaml:"compression" toml:"compression"`
	Metrics     MetricsConfig     `yaml:"metrics" toml:"metrics"`
	Client      ClientConfig      `yaml:"client" toml:"client"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string   `envconfig:"PORT" yaml:"port" toml:"port"`
	Host            string   `envconfig:"HOST" yaml:"host" toml:"host"`
	Name            string   `envconfig:"SERVICE_NAME" yaml:"name" toml:"name"`
	ShutdownTimeout Duration `envconfig:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" yaml:"development" toml:"development"`
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	Enabled      bool     `envconfig:"CORS_ENABLED" yaml:"enabled" toml:"enabled"`
	AllowOrigins []string `envconfig:"CORS_ORIGINS" yaml:"allow_origins" toml:"allow_origins"`
}

// CompressionConfig holds response compression configuration.
type CompressionConfig struct {
	Enabled bool `envconfig:"COMPRESSION_ENABLED" yaml:"enabled" toml:"enabled"`
	MinSize int  `envconfig:"COMPRESSION_MIN_SIZE" yaml:"min_size" toml:"min_size"`
}

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" yaml:"enabled" toml:"enabled"`
	Path    string `envconfig:"METRICS_PATH" yaml:"path" toml:"path"`
}

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	BaseURL        string   `envconfig:"API_BASE_URL" yaml:"base_url" toml:"base_url"`
	Timeout        Duration `envconfig:"API_TIMEOUT" yaml:"timeout" toml:"timeout"`
	BreakerEnabled bool     `envconfig:"API_BREAKER_ENABLED" yaml:"breaker_enabled" toml:"breaker_enabled"`
}

// Load loads configuration from environment variables on top of Default.
// Only variables that are set override a value.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads Default, then the YAML or TOML file at path, then environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			Name:            "cloud-api",
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		CORS: CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{"*"},
		},
		Compression: CompressionConfig{
			Enabled: true,
			MinSize: 1024,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Client: ClientConfig{
			BaseURL:        "http://localhost:8000",
			Timeout:        Duration(10 * time.Second),
			BreakerEnabled: false,
		},
	}
}

// Validate checks values that the loaders cannot type-check.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	if c.Compression.MinSize < 0 {
		return fmt.Errorf("compression min size must be >= 0, got %d", c.Compression.MinSize)
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/', got %q", c.Metrics.Path)
	}

	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid client base URL %q", c.Client.BaseURL)
	}

	if c.Client.Timeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("timeouts must be >= 0")
	}

	return nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
