package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Uploads     UploadsConfig
	AI          AIConfig
	Paystack    PaystackConfig
	Chat        ChatConfig
}

// UploadsConfig controls where visual-search uploads land on disk.
type UploadsConfig struct {
	Dir string // served back to clients under /uploads
}

// AIConfig holds keys for the sourcing/vision providers. Either key may be
// empty; the gateway fails per call and falls through to the next provider.
type AIConfig struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// PaystackConfig is used to call Paystack for checkout and transaction export.
type PaystackConfig struct {
	SecretKey string // PAYSTACK_SECRET_KEY, required
	BaseURL   string // override for tests; defaults to https://api.paystack.co
}

// ChatConfig controls the support-widget bot.
type ChatConfig struct {
	ReplyDelay time.Duration // delay before the canned bot reply is stored
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("CHAT_REPLY_DELAY", "1s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	replyDelay, err := time.ParseDuration(getEnvOrViper("CHAT_REPLY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_REPLY_DELAY: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "5000"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Uploads: UploadsConfig{
			Dir: getEnvOrViper("UPLOAD_DIR", "uploads"),
		},
		AI: AIConfig{
			AnthropicAPIKey: strings.TrimSpace(getEnvOrViper("ANTHROPIC_API_KEY", "")),
			OpenAIAPIKey:    strings.TrimSpace(getEnvOrViper("OPENAI_API_KEY", "")),
		},
		Paystack: PaystackConfig{
			SecretKey: strings.TrimSpace(getEnvOrViper("PAYSTACK_SECRET_KEY", "")),
			BaseURL:   strings.TrimSpace(getEnvOrViper("PAYSTACK_BASE_URL", "")),
		},
		Chat: ChatConfig{
			ReplyDelay: replyDelay,
		},
	}

	// Validate required fields. The AI keys stay optional: the gateway
	// degrades per call, but checkout cannot work at all without Paystack.
	if cfg.Paystack.SecretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
