package config

import (
	"os"
	"strings"
)

const (
	StorageSQLite = "sqlite"
	StorageBadger = "badger"
)

type Config struct {
	Port     string
	LogLevel string
	TimeZone string

	StorageDriver string
	DatabasePath  string
	BadgerDir     string

	SlackBotToken      string
	SlackSigningSecret string
	RosterChannelID    string
	RosterSchedule     string

	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		TimeZone: getEnv("TZ_NAME", "America/Sao_Paulo"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		DatabasePath:  getEnv("DATABASE_PATH", "./rotafacil.db"),
		BadgerDir:     getEnv("BADGER_DIR", "./data/badger"),

		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		RosterChannelID:    getEnv("ROSTER_CHANNEL_ID", ""),
		RosterSchedule:     getEnv("ROSTER_SCHEDULE", "0 6 * * 1-6"),

		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "models/gemini-2.5-flash-native-audio-preview-09-2025"),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"),
	}
}

// SlackEnabled reports whether a bot token is configured
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != ""
}

// VoiceEnabled reports whether the speech service can be reached
func (c *Config) VoiceEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
