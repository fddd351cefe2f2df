package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (the persisted store backend).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`

	// Remote catalog feed.
	CatalogFeedURL string `mapstructure:"CATALOG_FEED_URL"`

	// Admin credentials: a single configured pair, structurally separate
	// from the user collection.
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// Simulation knobs. Success rates are probabilities in [0,1]; delays
	// reproduce the artificial round-trip latency of the original flows.
	AvailabilitySuccessRate float64       `mapstructure:"AVAILABILITY_SUCCESS_RATE"`
	SettlementSuccessRate   float64       `mapstructure:"SETTLEMENT_SUCCESS_RATE"`
	LoginDelay              time.Duration `mapstructure:"LOGIN_DELAY"`
	AvailabilityDelay       time.Duration `mapstructure:"AVAILABILITY_DELAY"`
	SettlementDelay         time.Duration `mapstructure:"SETTLEMENT_DELAY"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("CATALOG_FEED_URL", "https://raw.githubusercontent.com/devika00410/Car-rental-API/main/data.json")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("AVAILABILITY_SUCCESS_RATE", 0.8)
	viper.SetDefault("SETTLEMENT_SUCCESS_RATE", 0.8)
	viper.SetDefault("LOGIN_DELAY", "300ms")
	viper.SetDefault("AVAILABILITY_DELAY", "800ms")
	viper.SetDefault("SETTLEMENT_DELAY", "2s")

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
