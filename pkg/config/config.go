// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	GuildID    string
	DevGuildID string

	// Ticket system
	TicketCategoryID string
	SupportRoleID    string
	ReportRoleID     string

	// Log destinations
	CommandLogChannelID string
	TicketLogChannelID  string
	WelcomeChannelID    string

	// Verification
	VerifiedRoleID string

	// Presence
	BotStatus   string
	BotActivity string

	// Storage
	DataDir    string
	MongoDBURL string
	DBName     string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string

	// Developers allowed to use /dev commands
	DevUserIDs []string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Today"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:   getEnv("botToken", ""),
		GuildID:    getEnv("guildId", ""),
		DevGuildID: getEnv("devGuildId", ""),

		// Ticket system
		TicketCategoryID: getEnv("ticketCategoryId", ""),
		SupportRoleID:    getEnv("supportRoleId", ""),
		ReportRoleID:     getEnv("reportRoleId", ""),

		// Log destinations
		CommandLogChannelID: getEnv("commandLogChannelId", ""),
		TicketLogChannelID:  getEnv("ticketLogChannelId", ""),
		WelcomeChannelID:    getEnv("welcomeChannelId", ""),

		// Verification
		VerifiedRoleID: getEnv("verifiedRoleId", ""),

		// Presence
		BotStatus:   getEnv("botStatus", "online"),
		BotActivity: getEnv("botActivity", "Shoreline Interactive"),

		// Storage
		DataDir:    getEnv("dataDir", "./data"),
		MongoDBURL: getEnv("mongodbUrl", ""),
		DBName:     getEnv("dbName", "ShorelineBot"),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", ""),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),

		// Developers
		DevUserIDs: splitList(getEnv("devUserIds", "")),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated env value into a slice
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// IsDev returns true if the given user id is a configured developer
func (c *Config) IsDev(userID string) bool {
	for _, id := range c.DevUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// UseMongo returns true if a MongoDB URL is configured for document storage
func (c *Config) UseMongo() bool {
	return c.MongoDBURL != ""
}
