package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Fetch             time.Duration // Timeout for documentation page fetches
	DNS               time.Duration // Timeout for DNS API calls
	Generate          time.Duration // Timeout for proxy-config generation calls
	Compose           time.Duration // Timeout for docker compose up/down
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - SAGE_TIMEOUT_FETCH (default: 30s)
//   - SAGE_TIMEOUT_DNS (default: 30s)
//   - SAGE_TIMEOUT_GENERATE (default: 2m)
//   - SAGE_TIMEOUT_COMPOSE (default: 5m)
//   - SAGE_RETRY_MAX_ATTEMPTS (default: 3)
//   - SAGE_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Fetch:             parseDuration("SAGE_TIMEOUT_FETCH", 30*time.Second),
		DNS:               parseDuration("SAGE_TIMEOUT_DNS", 30*time.Second),
		Generate:          parseDuration("SAGE_TIMEOUT_GENERATE", 2*time.Minute),
		Compose:           parseDuration("SAGE_TIMEOUT_COMPOSE", 5*time.Minute),
		RetryMaxAttempts:  parseInt("SAGE_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("SAGE_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
