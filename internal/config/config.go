package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Scoring  ScoringConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	Environment  string // development, staging, production
	PublicURL    string // external base URL used in payment redirects
}

// DatabaseConfig contains MySQL connection configuration.
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig contains the GridFS blob store configuration.
type MongoConfig struct {
	URI          string
	DatabaseName string
}

// AuthConfig contains token signing configuration.
type AuthConfig struct {
	JWTSecret   string
	TokenHours  int
}

// PaymentConfig contains Stripe configuration.
type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
	Enabled         bool
}

// ScoringConfig contains the AI relevance scoring configuration.
type ScoringConfig struct {
	OpenAIKey string
	Model     string
	Enabled   bool
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads .env when present and builds the config from the environment.
func Load() (*Config, error) {
	// Missing .env is fine in production; variables come from the host.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         envOrDefault("SERVER_PORT", "8080"),
			Host:         envOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  envIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: envIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			Environment:  envOrDefault("ENVIRONMENT", "development"),
			PublicURL:    envOrDefault("PUBLIC_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:         envOrDefault("DB_HOST", "localhost"),
			Port:         envOrDefault("DB_PORT", "3306"),
			Username:     envOrDefault("DB_USER", "contentshop"),
			Password:     os.Getenv("DB_PASSWORD"),
			DatabaseName: envOrDefault("DB_NAME", "contentshop_db"),
			MaxOpenConns: envIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Mongo: MongoConfig{
			URI:          envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName: envOrDefault("MONGO_DB", "contentshop_files"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenHours: envIntOrDefault("JWT_TOKEN_HOURS", 24),
		},
		Payment: PaymentConfig{
			StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			Currency:        envOrDefault("PAYMENT_CURRENCY", "usd"),
		},
		Scoring: ScoringConfig{
			OpenAIKey: os.Getenv("OPENAI_API_KEY"),
			Model:     envOrDefault("OPENAI_MODEL", "gpt-4o"),
		},
		Logging: LoggingConfig{
			Level:  envOrDefault("LOG_LEVEL", "info"),
			Format: envOrDefault("LOG_FORMAT", "json"),
		},
	}
	cfg.Payment.Enabled = cfg.Payment.StripeSecretKey != ""
	cfg.Scoring.Enabled = cfg.Scoring.OpenAIKey != ""

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
