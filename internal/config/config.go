// Package config loads client configuration from ~/.vaulterm/config.yaml
// with environment-variable overrides. A .env file in the working directory
// is honored for development setups.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment override names.
const (
	EnvServerURL = "VAULTERM_SERVER_URL"
	EnvTheme     = "VAULTERM_THEME"
	EnvTimeout   = "VAULTERM_TIMEOUT"
	EnvDebug     = "VAULTERM_DEBUG"
)

// Config holds all vaulterm configuration.
type Config struct {
	// ServerURL is the platform root, e.g. https://platform.example.com.
	// The client appends /api itself.
	ServerURL string `yaml:"server_url"`

	// Theme selects the TUI palette: "light", "dark" or "auto".
	Theme string `yaml:"theme"`

	// RequestTimeout bounds each API call. Zero disables the timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Debug enables verbose logging for the non-interactive commands.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:8000",
		Theme:          "auto",
		RequestTimeout: 30 * time.Second,
	}
}

// Dir returns the state directory (~/.vaulterm), creating nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vaulterm"), nil
}

// Load reads the config file at path (or the default location when path is
// empty), then applies environment overrides. A missing file is fine; the
// defaults apply.
func Load(path string) (Config, error) {
	// Best effort: a local .env can supply the override variables.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		dir, err := Dir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file, matching the
// precedence order: defaults < file < environment.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate checks the fields a bad config would otherwise fail on later.
func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server_url %q", c.ServerURL)
	}
	switch c.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Theme)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	return nil
}

// Save writes the config back to its default location, creating the state
// directory if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}
