package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	LandingConfigCollection string `json:"mongo_landing_config_collection"`
	ProductCollection       string `json:"mongo_product_collection"`
	LeadCollection          string `json:"mongo_lead_collection"`

	// Lead pipeline configuration
	LeadSource          string        `json:"lead_source"`
	LeadDedupeWindow    time.Duration `json:"lead_dedupe_window"`
	ThankYouPath        string        `json:"thank_you_path"`
	NavigationDelay     time.Duration `json:"navigation_delay"`
	ConversionValue     float64       `json:"conversion_value"`
	ConversionCurrency  string        `json:"conversion_currency"`

	// Analytics collectors (empty endpoint disables the collector)
	GAMeasurementID  string `json:"ga_measurement_id"`
	GAAPISecret      string `json:"ga_api_secret"`
	GAEndpoint       string `json:"ga_endpoint"`
	MetaPixelID      string `json:"meta_pixel_id"`
	MetaAccessToken  string `json:"meta_access_token"`
	MetaEndpoint     string `json:"meta_endpoint"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "15m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	dedupeWindow, err := time.ParseDuration(getEnvOrDefault("LEAD_DEDUPE_WINDOW", "24h"))
	if err != nil {
		return fmt.Errorf("invalid LEAD_DEDUPE_WINDOW: %w", err)
	}

	navigationDelay, err := time.ParseDuration(getEnvOrDefault("NAVIGATION_DELAY", "2s"))
	if err != nil {
		return fmt.Errorf("invalid NAVIGATION_DELAY: %w", err)
	}

	conversionValue, err := strconv.ParseFloat(getEnvOrDefault("CONVERSION_VALUE", "100"), 64)
	if err != nil {
		return fmt.Errorf("invalid CONVERSION_VALUE: %w", err)
	}

	// Landing configs are the one collection without a sane default name
	landingCollection := os.Getenv("MONGODB_LANDING_CONFIG_COLLECTION")
	if landingCollection == "" {
		return fmt.Errorf("MONGODB_LANDING_CONFIG_COLLECTION environment variable is required")
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "landing"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		LandingConfigCollection: landingCollection,
		ProductCollection:       getEnvOrDefault("MONGODB_PRODUCT_COLLECTION", "products"),
		LeadCollection:          getEnvOrDefault("MONGODB_LEAD_COLLECTION", "leads"),

		// Lead pipeline configuration
		LeadSource:         getEnvOrDefault("LEAD_SOURCE", "landing-page"),
		LeadDedupeWindow:   dedupeWindow,
		ThankYouPath:       getEnvOrDefault("THANK_YOU_PATH", "/obrigado"),
		NavigationDelay:    navigationDelay,
		ConversionValue:    conversionValue,
		ConversionCurrency: getEnvOrDefault("CONVERSION_CURRENCY", "BRL"),

		// Analytics collectors
		GAMeasurementID: getEnvOrDefault("GA_MEASUREMENT_ID", ""),
		GAAPISecret:     getEnvOrDefault("GA_API_SECRET", ""),
		GAEndpoint:      getEnvOrDefault("GA_ENDPOINT", "https://www.google-analytics.com/mp/collect"),
		MetaPixelID:     getEnvOrDefault("META_PIXEL_ID", ""),
		MetaAccessToken: getEnvOrDefault("META_ACCESS_TOKEN", ""),
		MetaEndpoint:    getEnvOrDefault("META_ENDPOINT", "https://graph.facebook.com/v18.0"),

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
