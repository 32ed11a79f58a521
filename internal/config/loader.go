package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config captures environment driven configuration values for the records
// tool.
type Config struct {
	SQLiteDSN string
	LogLevel  slog.Level
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for optional fields and reports every invalid
// entry in a single error rather than stopping at the first one.
func Load() (Config, error) {
	cfg := Config{
		SQLiteDSN: "file:records.db",
		LogLevel:  slog.LevelInfo,
	}

	invalid := make([]string, 0, 1)

	if dsn := strings.TrimSpace(os.Getenv("RECORDS_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if levelValue := strings.TrimSpace(os.Getenv("RECORDS_LOG_LEVEL")); levelValue != "" {
		level, ok := parseLevel(levelValue)
		if !ok {
			invalid = append(invalid, "RECORDS_LOG_LEVEL")
		} else {
			cfg.LogLevel = level
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func parseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
