package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port             string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	AutoMigrate      bool
	GinMode          string
	LogLevel         zerolog.Level
	BatchConcurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "pfe"),
		DBPassword:       getEnv("DB_PASSWORD", "pfe_secret"),
		DBName:           getEnv("DB_NAME", "pfe"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:      getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getLevel("LOG_LEVEL", zerolog.InfoLevel),
		BatchConcurrency: getInt("BATCH_CONCURRENCY", 8),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil && i > 0 {
			return i
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer, using default")
	}
	return fallback
}

func getLevel(key string, fallback zerolog.Level) zerolog.Level {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if lvl, err := zerolog.ParseLevel(value); err == nil {
			return lvl
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid log level, using default")
	}
	return fallback
}
