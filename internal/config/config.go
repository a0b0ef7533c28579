// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds all runtime settings.
type Config struct {
	LogLevel slog.Level
	LogFile  string
	LogJSON  bool
	Format   string
	Color    ColorMode
}

// DefaultConfig returns a Config with sensible defaults. Logging defaults to
// warnings only so prompts and reports are not interleaved with build events.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelWarn,
		Format:   "text",
		Color:    ColorAuto,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or unparseable values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("SYSTEMATICS_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		}
	}
	if v := getenv("SYSTEMATICS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("SYSTEMATICS_LOG_JSON"); v != "" {
		cfg.LogJSON, _ = strconv.ParseBool(v)
	}
	if v := getenv("SYSTEMATICS_FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := getenv("SYSTEMATICS_COLOR"); v != "" {
		switch mode := ColorMode(strings.ToLower(v)); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if getenv("NO_COLOR") != "" && cfg.Color == ColorAuto {
		cfg.Color = ColorNever
	}

	return cfg
}
