// Package logging builds the zerolog loggers used by the CLI and adapts
// them to the client's Logger interface.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how a logger is built.
type Config struct {
	Level   string
	Console bool
}

// New builds a zerolog logger writing to out. A nil writer defaults to
// stderr so log lines never mix with command output on stdout.
func New(cfg Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := zerolog.InfoLevel
	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ClientLogger adapts a zerolog logger to the osclient.Logger interface.
type ClientLogger struct {
	Z zerolog.Logger
}

// Debugf implements the client Logger interface.
func (l ClientLogger) Debugf(format string, args ...any) {
	l.Z.Debug().Msgf(format, args...)
}

// Errorf implements the client Logger interface.
func (l ClientLogger) Errorf(format string, args ...any) {
	l.Z.Error().Msgf(format, args...)
}
