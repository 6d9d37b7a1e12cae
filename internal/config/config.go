package config

import (
	"fmt"
	"os"
)

// Config collects every environment knob the server reads.
type Config struct {
	AppEnv        string
	Port          string
	AirportsFile  string
	SessionSecret string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		AppEnv:        getenv("APP_ENV", "development"),
		Port:          getenv("PORT", "8080"),
		AirportsFile:  getenv("AIRPORTS_FILE", "./airports.json"),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-do-not-use"),
		PGHost:        getenv("PG_HOST", "localhost"),
		PGPort:        getenv("PG_PORT", "5432"),
		PGUser:        os.Getenv("PG_USER"),
		PGPassword:    os.Getenv("PG_PASSWORD"),
		PGDatabase:    os.Getenv("PG_DB"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisConfigured reports whether a Redis session backend was requested.
func (c *Config) RedisConfigured() bool {
	return c.RedisHost != ""
}
