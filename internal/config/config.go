package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	// Primary database. Driver is "postgres" or "mysql".
	DBDriver    string
	DatabaseDSN string

	// Optional fallback store, attempted when the primary is unreachable.
	FallbackDBDriver    string
	FallbackDatabaseDSN string

	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBDriver:            getEnv("DB_DRIVER", "postgres"),
		DatabaseDSN:         getEnv("DATABASE_DSN", "host=localhost user=portfolio password=portfolio dbname=portfolio port=5432 sslmode=disable TimeZone=UTC"),
		FallbackDBDriver:    getEnv("FALLBACK_DB_DRIVER", "mysql"),
		FallbackDatabaseDSN: os.Getenv("FALLBACK_DATABASE_DSN"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
