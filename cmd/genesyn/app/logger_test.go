package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevelPrecedence(t *testing.T) {
	// Restore the global level mutated by logger construction
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	// Pin the environment so host LOG_LEVEL settings don't leak in
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name   string
		config Config
		want   zerolog.Level
	}{
		{"default is info", Config{}, zerolog.InfoLevel},
		{"verbose means debug", Config{Verbose: true}, zerolog.DebugLevel},
		{"quiet means warn", Config{Quiet: true}, zerolog.WarnLevel},
		{"quiet beats verbose", Config{Verbose: true, Quiet: true}, zerolog.WarnLevel},
		{"explicit level beats verbose", Config{Verbose: true, LogLevel: "error"}, zerolog.ErrorLevel},
		{"invalid level falls back to info", Config{LogLevel: "nonsense"}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.LogOutput = "discard"
			logger := NewLogger(&cfg)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestConfigUpdateFromFlags(t *testing.T) {
	t.Run("flags take precedence", func(t *testing.T) {
		c := &Config{Format: "csv", LogLevel: "info"}
		c.UpdateFromFlags(true, false, true, "json", "debug")

		assert.True(t, c.Verbose)
		assert.True(t, c.NoColor)
		assert.Equal(t, "json", c.Format)
		assert.Equal(t, "debug", c.LogLevel)
	})

	t.Run("empty flag values keep config values", func(t *testing.T) {
		c := &Config{Format: "yaml", LogLevel: "warn"}
		c.UpdateFromFlags(false, false, false, "", "")

		assert.Equal(t, "yaml", c.Format)
		assert.Equal(t, "warn", c.LogLevel)
	})
}
