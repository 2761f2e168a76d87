// Package logging provides the structured logger used by the zeno tools.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/reader"
)

// Logger wraps slog.Logger with zeno-specific helpers.
// Field names are kept consistent across commands.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, logs go to stderr as text at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// New builds a logger from the --log-format and --log-level flag values.
func New(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q (want text or json)", format)
	}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// WithFile adds the source name to every record.
func (l *Logger) WithFile(name string) *Logger {
	return &Logger{Logger: l.Logger.With("file", name)}
}

// WithWorker tags records from a check worker.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{Logger: l.Logger.With("worker", id)}
}

// LogLoad logs loading a source buffer.
func (l *Logger) LogLoad(ctx context.Context, uri string, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "load failed",
			"uri", uri,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "source loaded",
			"uri", uri,
			"bytes", size,
		)
	}
}

// LogForm logs one top-level form read at offset loc.
func (l *Logger) LogForm(ctx context.Context, index, loc, nodes int) {
	l.DebugContext(ctx, "form read",
		"index", index,
		"loc", loc,
		"nodes", nodes,
	)
}

// LogParseError logs a syntax error with its resolved position.
func (l *Logger) LogParseError(ctx context.Context, err error, line, col int) {
	args := []any{"error", err, "line", line, "col", col}
	var e *reader.Error
	if errors.As(err, &e) {
		args = append(args, "kind", e.Kind.String(), "loc", e.Loc)
	}
	l.InfoContext(ctx, "parse failed", args...)
}

// LogArena logs scratch arena usage after a parse.
func (l *Logger) LogArena(ctx context.Context, m alloc.ArenaMetrics) {
	l.DebugContext(ctx, "arena usage",
		"used", m.Used,
		"capacity", m.Capacity,
		"peak", m.Peak,
		"grows", m.Grows,
		"allocs", m.Allocs,
	)
}

// LogFatal logs an allocator failure that aborted the run.
func (l *Logger) LogFatal(ctx context.Context, f *alloc.FatalError) {
	l.ErrorContext(ctx, "fatal allocator error",
		"op", f.Op,
		"error", f.Err,
	)
}
