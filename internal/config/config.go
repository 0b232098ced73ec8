// ABOUTME: Configuration loader for the taskman client
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client settings
type Config struct {
	APIURL         string        // Backend base URL (no /api suffix)
	ConfigDir      string        // Directory for cookies, credentials, debug log
	RequestTimeout time.Duration // Per-request HTTP timeout
	Debug          bool          // Enable the debug log file
}

// Load reads configuration from .env (if present) and environment variables
func Load() *Config {
	// Missing .env is not an error; env vars and defaults still apply
	_ = godotenv.Load()

	return &Config{
		APIURL:         getEnv("TASKMAN_API_URL", "http://localhost:8080"),
		ConfigDir:      getEnv("TASKMAN_CONFIG_DIR", DefaultConfigDir()),
		RequestTimeout: getEnvDuration("TASKMAN_TIMEOUT", 30*time.Second),
		Debug:          getEnvBool("TASKMAN_DEBUG", false),
	}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskman")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "taskman")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
