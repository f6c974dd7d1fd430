package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	LogLevel slog.Level
	NoColor  bool
}

func Load() Config {
	return Config{
		LogLevel: parseLevel(getenv("LOG_LEVEL", "warn")),
		NoColor:  os.Getenv("NO_COLOR") != "",
	}
}

// parseLevel maps the env value to a slog level; unknown values fall back to
// warn so a typo never floods the menu output.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
