package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Config holds all application configuration
type Config struct {
	BotToken   string
	LogLevel   string
	Dictionary DictionaryConfig
	Session    SessionConfig
}

// DictionaryConfig holds dictionary API settings
type DictionaryConfig struct {
	BaseURL string
}

// SessionConfig controls how long idle sessions are kept
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load reads the bot configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Dictionary: loadDictionary(),
	}

	var err error
	if cfg.Session.IdleTTL, err = getDuration("SESSION_IDLE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Session.SweepInterval, err = getDuration("SESSION_SWEEP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	return cfg, nil
}

// LoadDictionary reads only the dictionary settings; used by tools that do not run the bot
func LoadDictionary() DictionaryConfig {
	_ = godotenv.Load()
	return loadDictionary()
}

func loadDictionary() DictionaryConfig {
	return DictionaryConfig{
		BaseURL: getEnv("DICTIONARY_API_URL", defaultDictionaryURL),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
