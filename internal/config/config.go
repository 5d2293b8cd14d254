package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores client settings.
type Config struct {
	API     API
	Geocode Geocode
	Session Session
	Debug   Debug

	// Args holds the non-flag arguments left after parsing: the
	// command name and its arguments.
	Args []string
}

// API stores deliveries backend settings.
type API struct {
	BaseURL string
	Timeout time.Duration
	Retry   Retry
}

// Retry stores backoff settings for read-only backend calls.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Geocode stores geocoding provider settings.
type Geocode struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

// Session stores where the authenticated user id is persisted.
type Session struct {
	File string
}

// Debug stores the optional pprof/metrics listener settings.
type Debug struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		API:     DefaultAPI(),
		Geocode: DefaultGeocode(),
		Session: Session{File: defaultSessionFile()},
		Debug:   DefaultDebug(),
	}

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if err := envDuration("API_TIMEOUT", &cfg.API.Timeout); err != nil {
		return nil, err
	}
	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		cfg.Geocode.BaseURL = v
	}
	if v := os.Getenv("GEOCODE_API_KEY"); v != "" {
		cfg.Geocode.Key = v
	}
	if err := envDuration("GEOCODE_TIMEOUT", &cfg.Geocode.Timeout); err != nil {
		return nil, err
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		cfg.Session.File = v
	}
	if v := os.Getenv("DEBUG_ADDR"); v != "" {
		cfg.Debug.Addr = v
	}
	if v := os.Getenv("DEBUG_USER"); v != "" {
		cfg.Debug.User = v
	}
	if v := os.Getenv("DEBUG_PASS"); v != "" {
		cfg.Debug.Pass = v
	}

	pflag.CommandLine.SetInterspersed(false)
	pflag.StringVar(&cfg.API.BaseURL, "api-url", cfg.API.BaseURL, "deliveries backend base URL")
	pflag.StringVar(&cfg.Geocode.Key, "geocode-key", cfg.Geocode.Key, "geocoding provider API key")
	pflag.StringVar(&cfg.Session.File, "session-file", cfg.Session.File, "path of the persisted session file")
	pflag.StringVar(&cfg.Debug.Addr, "debug-addr", cfg.Debug.Addr, "pprof/metrics listen address (empty disables)")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.Args = pflag.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validBaseURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api base url: %w", err)
	}
	if err := validBaseURL(c.Geocode.BaseURL); err != nil {
		return fmt.Errorf("geocode base url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout: %s", c.API.Timeout)
	}
	if c.Geocode.Timeout <= 0 {
		return fmt.Errorf("invalid geocode timeout: %s", c.Geocode.Timeout)
	}
	if c.API.Retry.MaxAttempts < 1 {
		return fmt.Errorf("invalid retry attempts: %d", c.API.Retry.MaxAttempts)
	}
	if c.Session.File == "" {
		return fmt.Errorf("session file path is empty")
	}
	return nil
}

func validBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("not an http(s) url: %q", raw)
	}
	return nil
}

func envDuration(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".entrega-session"
	}
	return filepath.Join(home, ".entrega", "session")
}
