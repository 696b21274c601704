package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port     string
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

type AuthConfig struct {
	BcryptCost     int
	CookieHashKey  string
	CookieBlockKey string
	CookieSecure   bool
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables.")
	}

	cost, err := getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	secure, err := getBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port: getString("PORT", "8080"),
		Database: DatabaseConfig{
			Driver: getString("DB_DRIVER", DriverSQLite),
			DSN:    getString("DB_DSN", "./database/database.db?_foreign_keys=on"),
		},
		Log: LogConfig{
			Level:  getString("LOG_LEVEL", "info"),
			Format: getString("LOG_FORMAT", "json"),
			File:   os.Getenv("LOG_FILE"),
		},
		Auth: AuthConfig{
			BcryptCost:     cost,
			CookieHashKey:  os.Getenv("COOKIE_HASH_KEY"),
			CookieBlockKey: os.Getenv("COOKIE_BLOCK_KEY"),
			CookieSecure:   secure,
		},
	}

	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Auth.CookieBlockKey != "" && cfg.Auth.CookieHashKey == "" {
		return nil, fmt.Errorf("COOKIE_BLOCK_KEY requires COOKIE_HASH_KEY")
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
