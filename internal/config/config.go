package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerAddr        string
	SessionSecret     string
	SessionMaxAge     int
	BackendURL        string
	BackendTimeout    time.Duration
	TrackingRecordID  string
	ReturnToRequested bool
	ContentDir        string
	HomeDir           string
}

const (
	defaultServerAddr       = ":8080"
	defaultSessionMaxAge    = 86400 * 7 // 7 days
	defaultBackendURL       = "http://127.0.0.1:5000"
	defaultBackendTimeout   = 10 * time.Second
	defaultTrackingRecordID = "1"
)

// ErrMissingSessionSecret is returned by Validate when the server is started
// without a cookie signing key.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is not set")

// New loads configuration from a .env file (if present) and the environment.
// Unset values fall back to development defaults.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:        getEnv("SERVER_ADDR", defaultServerAddr),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionMaxAge:     getEnvInt("SESSION_MAX_AGE", defaultSessionMaxAge),
		BackendURL:        getEnv("BACKEND_URL", defaultBackendURL),
		BackendTimeout:    getEnvDuration("BACKEND_TIMEOUT", defaultBackendTimeout),
		TrackingRecordID:  getEnv("TRACKING_RECORD_ID", defaultTrackingRecordID),
		ReturnToRequested: getEnvBool("AUTH_RETURN_TO_REQUESTED", false),
		ContentDir:        os.Getenv("CONTENT_DIR"),
		HomeDir:           os.Getenv("BLOOMLY_HOME"),
	}

	if cfg.HomeDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.HomeDir = filepath.Join(dir, "bloomly")
		} else {
			cfg.HomeDir = ".bloomly"
		}
	}

	return cfg
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	return nil
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetSessionMaxAge() int            { return c.SessionMaxAge }
func (c *Config) GetBackendURL() string            { return c.BackendURL }
func (c *Config) GetBackendTimeout() time.Duration { return c.BackendTimeout }
func (c *Config) GetTrackingRecordID() string      { return c.TrackingRecordID }
func (c *Config) GetReturnToRequested() bool       { return c.ReturnToRequested }
func (c *Config) GetContentDir() string            { return c.ContentDir }
func (c *Config) GetHomeDir() string               { return c.HomeDir }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Ignoring invalid integer for %s: %q", key, v)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("Ignoring invalid boolean for %s: %q", key, v)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Ignoring invalid duration for %s: %q", key, v)
	}
	return fallback
}
