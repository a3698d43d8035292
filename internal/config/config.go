// Package config provides environment configuration for the relay server.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultUpstreamBase is the public upstream API endpoint used when
// OPENAI_BASE is not set.
const DefaultUpstreamBase = "https://api.openai.com/v1"

// Config holds all configuration for the application. It is constructed once
// at startup and treated as immutable afterwards.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Upstream settings
	UpstreamAPIKey  string
	AgentID         string
	UpstreamBase    string
	ProjectID       string
	OrganizationID  string
	UserAgent       string
	UpstreamTimeout time.Duration

	// Caller access gate; empty means open access
	CallerKey string

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		// Server
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 150*time.Second),

		// Upstream
		UpstreamAPIKey:  getEnv("OPENAI_API_KEY", ""),
		AgentID:         getEnv("LISTINGS_AGENT_ID", ""),
		UpstreamBase:    getEnv("OPENAI_BASE", DefaultUpstreamBase),
		ProjectID:       getEnv("OPENAI_PROJECT", ""),
		OrganizationID:  getEnv("OPENAI_ORGANIZATION", ""),
		UserAgent:       getEnv("RELAY_USER_AGENT", ""),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 120*time.Second),

		// Access gate
		CallerKey: getEnv("PUBLIC_CALLER_KEY", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
