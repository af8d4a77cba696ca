// Package logging wraps zerolog for the heavyedge command line and turns
// engine progress callbacks into structured events.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/heavyedge/config"
	"github.com/katalvlaran/heavyedge/profile"
)

// Logger wraps zerolog.Logger with key/value convenience methods.
type Logger struct {
	zl   zerolog.Logger
	file *os.File // set when logging to a file; released by Close
}

// New builds a logger writing to w. format is "json" or "console"; an
// unknown level falls back to info.
func New(w io.Writer, level, format string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// FromConfig builds a logger from the logging section. OutputPath may be
// "stdout", "stderr" (or empty) or a file path, which is created or
// appended to.
func FromConfig(cfg config.LoggingConfig) (*Logger, error) {
	var out io.Writer
	switch cfg.OutputPath {
	case "stderr", "":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		dir := filepath.Dir(cfg.OutputPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log directory %s: %w", dir, err)
		}
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file %s: %w", cfg.OutputPath, err)
		}
		l := New(f, cfg.Level, cfg.Format)
		l.file = f

		return l, nil
	}

	return New(out, cfg.Level, cfg.Format), nil
}

// Close releases the log file opened by FromConfig. It is a no-op for
// stream loggers and safe to call more than once. Children made with With
// share the file; close only the logger that is retired last.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("logging: close log file: %w", err)
	}

	return nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger { return &Logger{zl: zerolog.Nop()} }

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(fields ...interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(fields).Logger(), file: l.file}
}

// Debug logs msg at debug level with key/value pairs.
func (l *Logger) Debug(msg string, fields ...interface{}) { emit(l.zl.Debug(), msg, fields) }

// Info logs msg at info level with key/value pairs.
func (l *Logger) Info(msg string, fields ...interface{}) { emit(l.zl.Info(), msg, fields) }

// Warn logs msg at warn level with key/value pairs.
func (l *Logger) Warn(msg string, fields ...interface{}) { emit(l.zl.Warn(), msg, fields) }

// Error logs msg at error level with key/value pairs. An "error" value is
// rendered with its Error method.
func (l *Logger) Error(msg string, fields ...interface{}) { emit(l.zl.Error(), msg, fields) }

func emit(e *zerolog.Event, msg string, fields []interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		if err, isErr := fields[i+1].(error); isErr {
			e.AnErr(key, err)

			continue
		}
		e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}

// Progress returns a profile.Logger that records every "i/total" message
// of the engines as an info event tagged with op.
func (l *Logger) Progress(op string) profile.Logger {
	return func(msg string) {
		l.zl.Info().Str("op", op).Str("progress", msg).Msg("batch done")
	}
}
