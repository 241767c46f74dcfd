package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultTimezone    = "America/Sao_Paulo"
	DefaultMetricsCron = "*/30 * * * * *"
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	Timezone    string
	MetricsCron string
	LogLevel    string
}

// DSN builds the libpq connection string for the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithDefaults fills the optional settings left empty in the environment.
func (c Config) WithDefaults() Config {
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.MetricsCron == "" {
		c.MetricsCron = DefaultMetricsCron
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	return c
}
