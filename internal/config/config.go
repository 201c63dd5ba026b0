// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. TAXSPLIT_ADDR.
const Prefix = "TAXSPLIT"

// Config holds runtime configuration for the server.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080" validate:"required"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=pretty json"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	// RateLimit is the number of requests per minute allowed per client IP.
	RateLimit int `envconfig:"RATE_LIMIT" default:"120" validate:"min=1"`

	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*" validate:"required"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
