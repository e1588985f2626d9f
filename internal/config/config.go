package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	Seed        bool

	// Due-dose poller interval
	PollInterval time.Duration

	// OpenAI configuration
	OpenAIAPIKey        string
	OpenAIInsightsModel string

	// Telegram reminder delivery
	TelegramBotToken string
	TelegramChatID   int64

	// OTLP trace export
	OTLPEndpoint string
	OTLPEnv      string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "file:medreminder.db?_fk=1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnv("SEED", "false") == "true",

		PollInterval: getDurationEnv("POLL_INTERVAL", time.Minute),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel: getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getInt64Env("TELEGRAM_CHAT_ID", 0),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		OTLPEnv:      getEnv("OTLP_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
