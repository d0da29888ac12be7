// Package config loads splitdesk's settings from the environment, with an
// optional .env file filling in anything not already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client settings.
type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// BaseURL is where the expense-split backend listens.
	BaseURL string        `env:"SPLITDESK_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"SPLITDESK_TIMEOUT" envDefault:"10s"`

	// Token is sent as a bearer token when set.
	Token string `env:"SPLITDESK_TOKEN"`

	// Metrics dumps client metrics to stderr after each command.
	Metrics bool `env:"SPLITDESK_METRICS"`
}

// Load reads the given .env files (".env" when none are named), then parses
// the environment. Missing .env files are ignored; variables already set in
// the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("SPLITDESK_BASE_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("SPLITDESK_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}
