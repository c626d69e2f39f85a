// Package config loads the CLI configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backends
const (
	BackendWebAPI = "webapi"
	BackendSDK    = "sdk"
)

// Output modes
const (
	OutputJSON  = "json"
	OutputLines = "lines"
)

// ErrMissingToken is returned by Validate when no bearer token is set
var ErrMissingToken = errors.New("SPOTIFY_TOKEN is required")

// Config represents the application configuration
type Config struct {
	// Spotify
	SpotifyToken string
	Backend      string

	// Console
	Output string

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads .env (if present) and the environment and fills defaults.
// Validation is left to the caller.
func Load() *Config {
	// A missing file is not an error and set variables are not overridden
	_ = godotenv.Load()

	cfg := FromEnv()
	cfg.ApplyDefaults()
	return cfg
}

// FromEnv builds a Config from environment variables without defaults
// for the backend or validation, so flags and prompts can still be
// applied on top.
func FromEnv() *Config {
	return &Config{
		SpotifyToken: getEnv("SPOTIFY_TOKEN", ""),
		Backend:      strings.ToLower(getEnv("TOPTRACKS_BACKEND", "")),
		Output:       strings.ToLower(getEnv("TOPTRACKS_OUTPUT", OutputJSON)),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

// ApplyDefaults fills the fields that were left empty
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendWebAPI
	}
	if c.Output == "" {
		c.Output = OutputJSON
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.SpotifyToken == "" {
		return ErrMissingToken
	}

	switch c.Backend {
	case BackendWebAPI, BackendSDK:
	default:
		return fmt.Errorf("unsupported backend %q (want %s or %s)", c.Backend, BackendWebAPI, BackendSDK)
	}

	switch c.Output {
	case OutputJSON, OutputLines:
	default:
		return fmt.Errorf("unsupported output %q (want %s or %s)", c.Output, OutputJSON, OutputLines)
	}

	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
