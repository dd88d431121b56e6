package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	API         APIConfig
	Storage     StorageConfig
	Telemetry   TelemetryConfig
	Environment string
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	LogBodies bool
}

type StorageConfig struct {
	CredentialsPath string
}

type TelemetryConfig struct {
	Enabled        bool
	ExporterURL    string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SamplingRatio  float64
}

func NewConfig() *Config {
	environment := getEnv("MEETAPP_ENVIRONMENT", "development")

	return &Config{
		API: APIConfig{
			BaseURL:   getEnv("MEETAPP_API_URL", "http://localhost:8080"),
			Timeout:   getEnvDuration("MEETAPP_API_TIMEOUT", 30*time.Second),
			LogBodies: getEnvBool("MEETAPP_API_LOG_BODIES", environment == "development"),
		},
		Storage: StorageConfig{
			CredentialsPath: getEnv("MEETAPP_CREDENTIALS_PATH", defaultCredentialsPath()),
		},
		Telemetry: TelemetryConfig{
			Enabled:        getEnvBool("TELEMETRY_ENABLED", false),
			ExporterURL:    getEnv("TELEMETRY_EXPORTER_URL", ""),
			ServiceName:    getEnv("TELEMETRY_SERVICE_NAME", "meetapp"),
			ServiceVersion: getEnv("TELEMETRY_SERVICE_VERSION", "1.0.0"),
			Environment:    getEnv("TELEMETRY_ENVIRONMENT", environment),
			SamplingRatio:  getEnvFloat("TELEMETRY_SAMPLING_RATIO", 1.0),
		},
		Environment: environment,
	}
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "meetapp", "session.json")
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
