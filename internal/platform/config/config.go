package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Omnibus policy knobs
	RetentionDays         int    // cleanup job cutoff window
	LowestPriceWindowDays int    // trailing window for lowest-price queries
	CleanupSchedule       string // cron expression for the retention job

	// Host platform catalog
	CatalogBaseURL  string
	CatalogAPIToken string

	// Auth for the admin surface and the platform webhook
	JWTSecret     string
	WebhookSecret string

	// Rate limit for the storefront read endpoint, ulule/limiter format (e.g. "60-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RETENTION_DAYS", 30)
	viper.SetDefault("LOWEST_PRICE_WINDOW_DAYS", 30)
	viper.SetDefault("CLEANUP_SCHEDULE", "0 3 * * *")
	viper.SetDefault("CATALOG_BASE_URL", "http://localhost:9000")
	viper.SetDefault("CATALOG_API_TOKEN", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RetentionDays = viper.GetInt("RETENTION_DAYS")
	if cfg.RetentionDays <= 0 {
		log.Printf("Warning: Invalid RETENTION_DAYS (%d). Defaulting to 30.\n", cfg.RetentionDays)
		cfg.RetentionDays = 30
	}

	cfg.LowestPriceWindowDays = viper.GetInt("LOWEST_PRICE_WINDOW_DAYS")
	if cfg.LowestPriceWindowDays <= 0 {
		log.Printf("Warning: Invalid LOWEST_PRICE_WINDOW_DAYS (%d). Defaulting to 30.\n", cfg.LowestPriceWindowDays)
		cfg.LowestPriceWindowDays = 30
	}

	cfg.CleanupSchedule = viper.GetString("CLEANUP_SCHEDULE")
	if cfg.CleanupSchedule == "" {
		cfg.CleanupSchedule = "0 3 * * *"
		log.Printf("Warning: CLEANUP_SCHEDULE not set. Defaulting to %q.\n", cfg.CleanupSchedule)
	}

	cfg.CatalogBaseURL = viper.GetString("CATALOG_BASE_URL")
	cfg.CatalogAPIToken = viper.GetString("CATALOG_API_TOKEN")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	cfg.WebhookSecret = viper.GetString("WEBHOOK_SECRET")
	if cfg.WebhookSecret == "" {
		log.Println("Warning: WEBHOOK_SECRET not set. Platform webhooks will be rejected.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
