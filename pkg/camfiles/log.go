package camfiles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Operation names attached to log events as the "op" field.
const (
	opEnsureDir  = "ensure_dir"
	opEnsureFile = "ensure_file"
	opClose      = "close"
	opCacheDir   = "cache_dir"
	opClearCache = "clear_cache"
	opOutputDir  = "output_dir"
)

// NewLogger creates a console logger writing to w at level, tagged lib=camfiles.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "camfiles").
		Logger()
}

// NewLoggerFromLevel is NewLogger with the level given by name, as it
// appears in config files and flags.
func NewLoggerFromLevel(w io.Writer, levelStr string) (zerolog.Logger, error) {
	level, err := LogLevelFromString(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	return NewLogger(w, level), nil
}

// NewTestLogger creates a logger instance for tests with a specified verbosity.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	var level zerolog.Level
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	return NewLogger(w, level)
}

// LogLevelFromString parses a level name, ignoring case and surrounding space.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
}

// DefaultLogger returns a logger with default settings (warn level, stderr output).
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}

// opLogger returns a child of l whose events carry op and, when set, path.
func opLogger(l zerolog.Logger, op, path string) zerolog.Logger {
	ctx := l.With().Str("op", op)
	if path != "" {
		ctx = ctx.Str("path", path)
	}
	return ctx.Logger()
}
