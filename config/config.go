package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Database configuration. Driver is "postgres" or "sqlite"; SQLite is
	// the local/dev default since the whole system is single-household.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration (AI response cache and rate limiter)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// AI gateway configuration
	LLMAPIKey string
	LLMAPIURL string

	// Optional S3 archive for analyzed photos
	S3Bucket string
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://frontend:5173"), ","),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "freshkeep"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "freshkeep"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "foodItems.db"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		LLMAPIKey: os.Getenv("LLM_API_KEY"),
		LLMAPIURL: getEnv("LLM_API_URL", "https://api.deepseek.com/v1/chat/completions"),

		S3Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	// The API key may come from a file (Docker secrets style)
	if cfg.LLMAPIKey == "" {
		if keyFile := os.Getenv("LLM_API_KEY_FILE"); keyFile != "" {
			data, err := os.ReadFile(keyFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read LLM API key file: %w", err)
			}
			cfg.LLMAPIKey = string(data)
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
