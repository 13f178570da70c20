// Package config loads process settings from the environment.
//
// A .env file in the working directory is read first (development
// convenience); real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port            string        `env:"PORT" envDefault:"5175"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty       bool          `env:"LOG_PRETTY" envDefault:"false"`
	WordsFile       string        `env:"WORDS_FILE"`
	DisplayLimit    int           `env:"DISPLAY_LIMIT" envDefault:"50"`
	ClientOrigin    string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads an optional .env file and parses the environment.
func Load(envFiles ...string) (Config, error) {
	// Missing .env files are fine; any other read error is not.
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT is empty")
	}
	if c.DisplayLimit < 0 {
		return fmt.Errorf("config: DISPLAY_LIMIT must be >= 0, got %d", c.DisplayLimit)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
