package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/rs/zerolog"
)

// New returns the root logger. Every entry carries the component field.
func New(cfg config.LoggingConfig, component string) zerolog.Logger {
	return newWithWriter(cfg, component, os.Stdout)
}

func newWithWriter(cfg config.LoggingConfig, component string, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
