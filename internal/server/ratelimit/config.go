package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "RATE_LIMIT_DEFAULT_WINDOW"
	EnvCleanupInterval = "RATE_LIMIT_CLEANUP_INTERVAL"
	EnvWhitelist       = "RATE_LIMIT_WHITELIST"
	EnvBlacklist       = "RATE_LIMIT_BLACKLIST"
)

// LoadConfig loads rate limiting configuration from environment variables.
// Unparseable values fall back to the defaults.
func LoadConfig() *Config {
	if !envOr(EnvEnabled, true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr(EnvDefaultLimit, 1000, strconv.Atoi),
		DefaultWindow:   envOr(EnvDefaultWindow, time.Minute, time.ParseDuration),
		CleanupInterval: envOr(EnvCleanupInterval, 5*time.Minute, time.ParseDuration),
		Whitelist:       parseClientList(os.Getenv(EnvWhitelist)),
		Blacklist:       parseClientList(os.Getenv(EnvBlacklist)),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Calls out to the generative-language endpoint (strictest limits)
		{Path: "/skill-gap", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/jobs/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10}, // apply and job skill gap

		// Writes
		{Path: "/auth/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/auth/role", Method: "PUT", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/interviews", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/jobs", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Reads use the default limit; GET /health is unlimited in MatchEndpoint
	}
}

// envOr parses the variable key, or returns def when it is unset or invalid.
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// parseClientList turns a comma-separated list of client IPs into a set.
func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
