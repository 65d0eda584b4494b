package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	Port      string
	JWTSecret string
	LogLevel  string

	// DB_* settings; when DB_HOST is empty the in-memory store is used.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:       getenv("PORT", "8080"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

// PostgresDSN builds the DSN for the configured database. Empty when no
// database is configured.
func (c Config) PostgresDSN() string {
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
