package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the greeting server
type Config struct {
	// Server configuration
	HTTPPort int    `env:"FIRSTAPP_HTTP_PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// gRPC health endpoint
	GRPC GRPCConfig

	// Clock formatting for /get-time
	Clock ClockConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// GRPCConfig holds configuration for the optional gRPC health endpoint
type GRPCConfig struct {
	Enabled bool `env:"FIRSTAPP_GRPC_ENABLED" envDefault:"false"`
	Port    int  `env:"FIRSTAPP_GRPC_PORT" envDefault:"9090"`
}

// ClockConfig controls how the current time is rendered.
// The default layout matches the en-US time-of-day format, e.g. "2:05:09 PM".
type ClockConfig struct {
	Layout string `env:"TIME_LAYOUT" envDefault:"3:04:05 PM"`
	Zone   string `env:"TIME_ZONE" envDefault:"Local"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.GRPC.Enabled && (c.GRPC.Port < 1 || c.GRPC.Port > 65535) {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPC.Port)
	}
	if c.GRPC.Enabled && c.GRPC.Port == c.HTTPPort {
		return fmt.Errorf("gRPC port %d collides with HTTP port", c.GRPC.Port)
	}

	if c.Clock.Layout == "" {
		return fmt.Errorf("time layout is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	if c.Timeouts.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Location resolves the configured time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Clock.Zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.Clock.Zone, err)
	}
	return loc, nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GetGRPCAddr returns the gRPC server address
func (c *Config) GetGRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPC.Port)
}
