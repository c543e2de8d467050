package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is read from the environment (optionally pre-filled from .env).
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"delivery_time"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Timezone is the single zone all order times and delivery dates are read in.
	Timezone string `env:"APP_TIMEZONE" envDefault:"Local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AdminAPIKey           string `env:"ADMIN_API_KEY"`
	RulesSeedPath         string `env:"RULES_SEED_PATH"`
	OrderSchedulingCron   string `env:"ORDER_SCHEDULING_CRON" envDefault:"*/5 * * * * *"`
	OrderSchedulingEnable bool   `env:"ORDER_SCHEDULING_ENABLED" envDefault:"true"`
}

// NewConfig parses the process environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves Timezone. "Local" and "" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// DSN builds the PostgreSQL connection string for DBName.
func (c Config) DSN() string {
	return c.DSNFor(c.DBName)
}

// DSNFor builds a connection string for another database on the same server.
func (c Config) DSNFor(database string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, database, c.DBSslMode)
}
