package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a new logger based on the configuration, writing to w.
func NewLogger(cfg LoggerConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "product-api").
		Logger()
}
