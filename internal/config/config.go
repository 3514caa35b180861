package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

// Config holds runtime configuration values for the Maqala server.
type Config struct {
	ServerPort    int
	LogLevel      string
	LLMEndpoint   string
	LLMAPIKey     string
	LLMModel      string
	ImageLookups  bool
	SentryDSN     string
	Environment   string
	Release       string
	ShutdownGrace time.Duration
}

const (
	defaultServerPort    = 8080
	defaultLogLevel      = "info"
	defaultLLMEndpoint   = "https://api.groq.com/openai/v1"
	defaultLLMModel      = "llama3-8b-8192"
	defaultEnvironment   = "development"
	defaultShutdownGrace = 10 * time.Second
)

// Load reads configuration values from environment variables, applying defaults where necessary.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		LLMEndpoint:   getEnv("LLM_ENDPOINT", defaultLLMEndpoint),
		LLMAPIKey:     os.Getenv("LLM_API_KEY"),
		LLMModel:      getEnv("LLM_MODEL", defaultLLMModel),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Environment:   getEnv("ENV", defaultEnvironment),
		Release:       os.Getenv("RELEASE"),
		ShutdownGrace: defaultShutdownGrace,
	}

	portValue := getEnv("SERVER_PORT", strconv.Itoa(defaultServerPort))
	port, err := strconv.Atoi(portValue)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid SERVER_PORT value: %s", portValue)
	}
	cfg.ServerPort = port

	lookupsValue := getEnv("IMAGE_LOOKUPS", "true")
	lookups, err := strconv.ParseBool(lookupsValue)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid IMAGE_LOOKUPS value: %s", lookupsValue)
	}
	cfg.ImageLookups = lookups

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
