package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const DefaultCatalogPath = "catalog.csv"

// Config holds the settings for a catalog session
type Config struct {
	CatalogPath string
	LogLevel    slog.Level
	SyncOnAdd   bool
}

// FromEnv builds a Config from SHELF_CATALOG, LOG_LEVEL and SHELF_SYNC_ON_ADD
func FromEnv() Config {
	cfg := Config{
		CatalogPath: os.Getenv("SHELF_CATALOG"),
		LogLevel:    ParseLevel(os.Getenv("LOG_LEVEL")),
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}

	if v := os.Getenv("SHELF_SYNC_ON_ADD"); v != "" {
		sync, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("Ignoring invalid SHELF_SYNC_ON_ADD", "value", v, "err", err)
		}
		cfg.SyncOnAdd = sync
	}

	return cfg
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
