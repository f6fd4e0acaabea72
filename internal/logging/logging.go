// Package logging builds the zerolog loggers used by the app and the headless driver.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Supported level names
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = LevelInfo

// ParseLevel converts a level name to a zerolog level
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelError:
		return zerolog.ErrorLevel, nil
	case LevelWarn, "warning":
		return zerolog.WarnLevel, nil
	case LevelInfo, "":
		return zerolog.InfoLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelTrace:
		return zerolog.TraceLevel, nil
	default:
		return zerolog.NoLevel, errors.Errorf("invalid log level: %s (must be error, warn, info, debug or trace)", level)
	}
}

// New creates a human-readable logger writing to w at the given level
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}
