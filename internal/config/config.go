// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Key sources for the completion provider API key.
const (
	KeySourceEnv = "env"
	KeySourceSSM = "ssm"
)

type Config struct {
	ListenAddr string

	ProviderBaseURL string
	Model           string
	MaxOutputTokens int
	Temperature     float64
	MaxMessageLen   int

	KeySource   string
	APIKey      string
	ParamPrefix string

	AuditLogPath    string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      getEnvString("LISTEN_ADDR", ":8080"),
		ProviderBaseURL: getEnvString("PROVIDER_BASE_URL", "https://api.openai.com/v1"),
		Model:           getEnvString("PROVIDER_MODEL", "gpt-3.5-turbo"),
		MaxOutputTokens: getEnvInt("MAX_OUTPUT_TOKENS", 1000),
		Temperature:     getEnvFloat("TEMPERATURE", 0.7),
		MaxMessageLen:   getEnvInt("MAX_MESSAGE_LENGTH", 2000),
		KeySource:       getEnvString("KEY_SOURCE", KeySourceEnv),
		APIKey:          getEnvString("OPENAI_API_KEY", ""),
		ParamPrefix:     getEnvString("PARAM_PREFIX", ""),
		AuditLogPath:    getEnvString("AUDIT_LOG_PATH", "audit_trail.log"),
		CORSOrigin:      getEnvString("CORS_ORIGIN", "*"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	switch cfg.KeySource {
	case KeySourceEnv:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("config: OPENAI_API_KEY is required when KEY_SOURCE=%s", KeySourceEnv)
		}
	case KeySourceSSM:
		if cfg.ParamPrefix == "" {
			return nil, fmt.Errorf("config: PARAM_PREFIX is required when KEY_SOURCE=%s", KeySourceSSM)
		}
	default:
		return nil, fmt.Errorf("config: unknown KEY_SOURCE %q", cfg.KeySource)
	}

	if cfg.MaxOutputTokens <= 0 {
		return nil, fmt.Errorf("config: MAX_OUTPUT_TOKENS must be positive, got %d", cfg.MaxOutputTokens)
	}
	if cfg.MaxMessageLen <= 0 {
		return nil, fmt.Errorf("config: MAX_MESSAGE_LENGTH must be positive, got %d", cfg.MaxMessageLen)
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
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
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
