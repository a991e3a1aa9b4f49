// Package log provides helpers for creating a configured slog.Logger.
//
// When a log file path is not provided, logs are written to stdout for
// non-error levels and to stderr for errors (so stderr can be used for
// error redirection while keeping normal logs on stdout). Translated
// reports go to stdout as well when no output device is set, so the run
// command logs to stderr only.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r)
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}

// below drops records at or above limit; the console uses it to keep errors
// off stdout.
type below struct {
	slog.Handler
	limit slog.Level
}

func (b below) Enabled(ctx context.Context, level slog.Level) bool {
	return level < b.limit && b.Handler.Enabled(ctx, level)
}

func (b below) WithAttrs(attrs []slog.Attr) slog.Handler {
	return below{Handler: b.Handler.WithAttrs(attrs), limit: b.limit}
}

func (b below) WithGroup(name string) slog.Handler {
	return below{Handler: b.Handler.WithGroup(name), limit: b.limit}
}

// Options select where and how records are written.
type Options struct {
	Level string
	// Format is "text" (default) or "json".
	Format string
	// File receives every record in addition to stderr when set.
	File string
	// Stderr sends all console output to stderr. Used when stdout carries
	// translated reports.
	Stderr bool
}

func newHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
func SetupLogger(o Options) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(o.Level)
	var handlers fanout

	if o.File == "" && !o.Stderr {
		handlers = append(handlers,
			below{Handler: newHandler(os.Stdout, o.Format, level), limit: slog.LevelError},
			newHandler(os.Stderr, o.Format, max(level, slog.LevelError)),
		)
	} else {
		handlers = append(handlers, newHandler(os.Stderr, o.Format, level))
	}
	var closeFiles []io.Closer
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, newHandler(f, o.Format, level))
	}
	logger := slog.New(handlers)
	return logger, closeFiles, nil
}
