package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Collaborator credentials.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	StripeKey    string `mapstructure:"STRIPE_KEY"`
	AWSRegion    string `mapstructure:"AWS_REGION"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`

	// Itinerary build parameters.
	DefaultBudget   int     `mapstructure:"DEFAULT_BUDGET"`
	BudgetTolerance float64 `mapstructure:"BUDGET_TOLERANCE"`
	PlanCacheTTLMin int     `mapstructure:"PLAN_CACHE_TTL_MIN"`

	// When true, a place-search failure aborts the build instead of
	// degrading to the seeded city pools.
	StrictCollaborators bool `mapstructure:"STRICT_COLLABORATORS"`

	// Stripe checkout redirect URLs.
	CheckoutSuccessURL string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `mapstructure:"CHECKOUT_CANCEL_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("AWS_REGION", "eu-west-1")
	viper.SetDefault("EMAIL_FROM", "plans@wayplan.app")
	viper.SetDefault("DEFAULT_BUDGET", 100)
	viper.SetDefault("BUDGET_TOLERANCE", 0.3)
	viper.SetDefault("PLAN_CACHE_TTL_MIN", 30)
	viper.SetDefault("STRICT_COLLABORATORS", false)
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "https://wayplan.app/checkout/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "https://wayplan.app/checkout/cancel")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
