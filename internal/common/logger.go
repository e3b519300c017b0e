package common

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"contentshop/internal/config"
)

// NewLogger builds the process-wide zerolog logger from config.
func NewLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "contentshop").
		Logger()
}
