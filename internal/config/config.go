// Package config loads runtime settings from the environment, with a .env
// file fallback for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSQLitePath is the database file used when DATABASE_URL is unset.
const DefaultSQLitePath = "courier.db"

type Config struct {
	// Addr is the HTTP bind address.
	Addr string
	// DatabaseURL is the raw connection string from the environment.
	DatabaseURL string
}

// Load reads configuration from the environment. A .env file in the working
// directory, if present, is loaded first; real environment variables win.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// DriverAndDSN resolves the connection string into a database/sql driver name
// and data source. postgres:// and postgresql:// URLs select the Postgres
// driver (the legacy postgres:// prefix is normalized); sqlite:// and
// sqlite3:// prefixes are stripped; anything else is treated as a SQLite file
// path, defaulting to a local file when empty.
func (c *Config) DriverAndDSN() (driver, dsn string) {
	url := strings.TrimSpace(c.DatabaseURL)
	switch {
	case strings.HasPrefix(url, "postgresql://"):
		return "postgres", "postgres://" + strings.TrimPrefix(url, "postgresql://")
	case strings.HasPrefix(url, "postgres://"):
		return "postgres", url
	case strings.HasPrefix(url, "sqlite3://"):
		return "sqlite3", strings.TrimPrefix(url, "sqlite3://")
	case strings.HasPrefix(url, "sqlite://"):
		return "sqlite3", strings.TrimPrefix(url, "sqlite://")
	case url == "":
		return "sqlite3", DefaultSQLitePath
	default:
		return "sqlite3", url
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
