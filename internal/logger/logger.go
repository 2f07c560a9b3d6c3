package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr so stdout stays valid JSON for
// piped consumers.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()

	return logger.Level(zerolog.WarnLevel)
}

// WithLevel returns a logger at the given level name. Unknown names fall
// back to warn.
func WithLevel(name string) zerolog.Logger {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		level = zerolog.WarnLevel
	}
	return New().Level(level)
}
