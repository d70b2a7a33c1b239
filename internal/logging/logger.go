package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from the level and format settings.
// Defaults to JSON at info level on stdout.
func New(level, format string) *zerolog.Logger {
	parsed := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		parsed = lvl
	}

	output := io.Writer(os.Stdout)
	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(output).
		Level(parsed).
		With().
		Timestamp().
		Str("app", "smarak").
		Logger()

	return &logger
}
