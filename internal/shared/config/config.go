package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Telemetry TelemetryConfig
	Log       LogConfig
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

type LogConfig struct {
	Verbose bool
}

// Load reads configuration from the environment. Every default reproduces
// the plain showcase run with telemetry off.
func Load() (*Config, error) {
	cfg := &Config{
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "accountdemo"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
		},
		Log: LogConfig{
			Verbose: getBoolEnv("LOG_VERBOSE", false),
		},
	}

	if cfg.Telemetry.Enabled {
		if strings.TrimSpace(cfg.Telemetry.OTLPEndpoint) == "" {
			return nil, fmt.Errorf("OTEL_EXPORTER_ENDPOINT is required when OTEL_ENABLED=true")
		}
		if strings.Contains(cfg.Telemetry.OTLPEndpoint, "://") {
			return nil, fmt.Errorf("OTEL_EXPORTER_ENDPOINT must be host:port, got %q", cfg.Telemetry.OTLPEndpoint)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
