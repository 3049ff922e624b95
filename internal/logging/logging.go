// Package logging builds the zerolog loggers used across tabview. Commands
// construct one logger at startup and pass it down through component
// loggers and contexts; library packages stay silent and let callers log
// around them.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, format, and optional file sink for a logger.
type Config struct {
	// Level is a zerolog level name ("trace" through "panic"). Unknown
	// values fall back to "info".
	Level string `yaml:"level" json:"level"`

	// Format is FormatConsole for human-readable output or FormatJSON for
	// machine-readable lines. Unknown values fall back to console.
	Format string `yaml:"format" json:"format"`

	// File, when set, duplicates all output to this path in append mode.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// New builds a logger writing to console per cfg. The returned closer owns
// the log file handle when cfg.File is set and must be closed by the
// caller; it is a no-op otherwise. Errors opening the file are returned
// rather than silently degrading to console-only output.
func New(cfg Config, console io.Writer) (zerolog.Logger, io.Closer, error) {
	if console == nil {
		console = os.Stderr
	}

	var out io.Writer
	switch cfg.Format {
	case FormatJSON:
		out = console
	default:
		out = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	}

	closer := io.Closer(nopCloser{})
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		out = zerolog.MultiLevelWriter(out, file)
		closer = file
	}

	logger := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info for
// anything unparseable.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ComponentLogger tags a logger with the component emitting it, so every
// event carries its origin.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches the logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or a disabled logger
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
