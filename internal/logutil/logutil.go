// Package logutil builds the structured loggers used across lazygraph.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace is more verbose than slog.LevelDebug. It is enabled by
// LAZYGRAPH_DEBUG=2.
const LevelTrace slog.Level = -8

// NewLogger returns a text logger writing to w at the given level.
// Trace records are labelled TRACE and source paths are shortened to the
// file name.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= LevelTrace,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if l, ok := attr.Value.Any().(slog.Level); ok && l == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace logs msg at LevelTrace, attributing the record to the caller.
func Trace(logger *slog.Logger, msg string, args ...any) {
	ctx := context.TODO()
	if !logger.Enabled(ctx, LevelTrace) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), LevelTrace, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}

// TraceEnabled reports whether logger emits trace records.
func TraceEnabled(logger *slog.Logger) bool {
	return logger.Enabled(context.TODO(), LevelTrace)
}
