package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate-limit policy for one endpoint.
type EndpointConfig struct {
	Path   string        // path pattern, trailing "/" enables prefix matching
	Method string        // HTTP method
	Limit  int           // maximum requests per window, 0 means unlimited
	Window time.Duration // time window
	Burst  int           // burst capacity, defaults to Limit when 0
}

// LoadConfig reads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint policies.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: fan-out and network-bound operations, strictest limits.
		{Path: "/match/batch", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/candidates", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/ingest", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/recommend", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Tier 2: single-document scoring, moderate limits.
		{Path: "/match", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/extract", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/analyze", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: token issuance.
		{Path: "/token", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},

		// Reads fall through to the default limit; /health is unlimited via
		// the matcher's special case.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated client-ID list into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
