// Package logger builds the zerolog loggers shared by the engine subsystems.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config log level name to a zerolog level. Unknown names resolve to info.
//
// Parameters:
//   - name: level name (trace, debug, info, warn, error), case-insensitive
//
// Returns:
//   - zerolog.Level: the resolved level
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a console logger writing to out at the given level.
//
// Parameters:
//   - level: level name, see ParseLevel
//   - out: destination writer
//   - noColor: disables ANSI colors (use for files and tests)
//
// Returns:
//   - zerolog.Logger: the configured logger
func New(level string, out io.Writer, noColor bool) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the subsystem name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
