package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	BaseURL  string
	Currency string
	Stripe   StripeConfig
	Content  ContentConfig
	Cart     CartStorageConfig
}

// StripeConfig holds the payment processor credentials.
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

// ContentConfig holds the headless content backend connection settings.
// The backend is queried through its generic document-query API; this
// application never mutates it.
type ContentConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string // optional, for private datasets
}

// CartStorageConfig selects where cart snapshots are persisted.
type CartStorageConfig struct {
	Provider string // "local" or "memory"
	Path     string // root directory for the local provider
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		BaseURL:  getEnv("BASE_URL", "http://localhost:3000"),
		Currency: getEnv("CURRENCY", "usd"),
		Stripe: StripeConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", "sk_test_your_key_here"),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", "pk_test_your_key_here"),
		},
		Content: ContentConfig{
			ProjectID:  getEnv("CONTENT_PROJECT_ID", ""),
			Dataset:    getEnv("CONTENT_DATASET", "production"),
			APIVersion: getEnv("CONTENT_API_VERSION", "2023-01-01"),
			UseCDN:     getEnvBool("CONTENT_USE_CDN", true),
			Token:      getEnv("CONTENT_TOKEN", ""),
		},
		Cart: CartStorageConfig{
			Provider: getEnv("CART_STORAGE_PROVIDER", "local"),
			Path:     getEnv("CART_STORAGE_PATH", "./data"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Content.ProjectID == "" {
		return nil, fmt.Errorf("CONTENT_PROJECT_ID must be set")
	}

	if cfg.Env == "prod" && cfg.Stripe.SecretKey == "sk_test_your_key_here" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY must be set in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
