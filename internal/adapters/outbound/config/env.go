package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv holds process settings for the HTTP service.
type ServerEnv struct {
	Addr           string        `env:"DESIGNQA_HTTP_ADDR"       envDefault:":8080"`
	LogLevel       string        `env:"DESIGNQA_LOG_LEVEL"       envDefault:"info"`
	ConfigDir      string        `env:"DESIGNQA_CONFIG_DIR"      envDefault:"."`
	AllowedOrigin  string        `env:"DESIGNQA_ALLOWED_ORIGIN"  envDefault:"*"`
	RequestTimeout time.Duration `env:"DESIGNQA_REQUEST_TIMEOUT" envDefault:"10s"`
}

// LoadServerEnv parses ServerEnv from the environment.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := env.Parse(&cfg); err != nil {
		return ServerEnv{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return ServerEnv{}, fmt.Errorf("DESIGNQA_REQUEST_TIMEOUT must be positive (got %s)", cfg.RequestTimeout)
	}
	return cfg, nil
}
