// Package logging writes structured logs to a file; the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is a file-backed slog logger with an adjustable level.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// Open creates parent directories and appends JSON records to path. An
// empty path discards everything.
func Open(path, level string) (*Logger, error) {
	lv := &slog.LevelVar{}
	lv.Set(ParseLevel(level))

	var w io.Writer = io.Discard
	var file *os.File
	if strings.TrimSpace(path) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	}
	return New(w, lv, file), nil
}

// New wraps w. file may be nil when the writer needs no closing.
func New(w io.Writer, lv *slog.LevelVar, file *os.File) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv})
	return &Logger{Logger: slog.New(handler), level: lv, file: file}
}

func (l *Logger) SetLevel(raw string) { l.level.Set(ParseLevel(raw)) }

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps debug, info, warn and error; anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
