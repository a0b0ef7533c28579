package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadFrom(envOf(nil))
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg := loadFrom(envOf(map[string]string{
		"SYSTEMATICS_LOG_LEVEL": "debug",
		"SYSTEMATICS_LOG_FILE":  "/tmp/systematics.log",
		"SYSTEMATICS_LOG_JSON":  "true",
		"SYSTEMATICS_FORMAT":    "YAML",
		"SYSTEMATICS_COLOR":     "Always",
	}))

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/systematics.log", cfg.LogFile)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	cfg := loadFrom(envOf(map[string]string{
		"SYSTEMATICS_LOG_LEVEL": "loud",
		"SYSTEMATICS_COLOR":     "rainbow",
	}))
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadConfig_NoColor(t *testing.T) {
	cfg := loadFrom(envOf(map[string]string{"NO_COLOR": "1"}))
	assert.Equal(t, ColorNever, cfg.Color)

	cfg = loadFrom(envOf(map[string]string{"NO_COLOR": "1", "SYSTEMATICS_COLOR": "always"}))
	assert.Equal(t, ColorAlways, cfg.Color)
}
