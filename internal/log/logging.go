// Package log builds the slog.Logger used by the gremlin tooling.
//
// Without a log file, records below error level go to stdout and errors go to
// stderr. With a log file, everything is written to the file and mirrored to
// stderr.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is more verbose than slog.LevelDebug.
const LevelTrace slog.Level = -8

const (
	levelLowest  slog.Level = -1 << 30
	levelHighest slog.Level = 1 << 30
)

// Config holds the logging flags shared by every command.
type Config struct {
	Level  string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"GREMLIN_LOG_LEVEL"`
	File   string `help:"Write logs to this file instead of stdout" env:"GREMLIN_LOG_FILE"`
	Format string `help:"Log record format" enum:"text,json" default:"text" env:"GREMLIN_LOG_FORMAT"`
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends every record to all handlers that accept its level.
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
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelRange restricts a handler to levels in [min, max).
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (r levelRange) accepts(l slog.Level) bool { return l >= r.min && l < r.max }

func (r levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return r.accepts(level) && r.h.Enabled(ctx, level)
}

func (r levelRange) Handle(ctx context.Context, rec slog.Record) error {
	if !r.accepts(rec.Level) {
		return nil
	}
	return r.h.Handle(ctx, rec)
}

func (r levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithAttrs(attrs)}
}

func (r levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithGroup(name)}
}

// New builds a logger writing to stdout/stderr, or to stderr and the given
// writer when file is non-nil.
func New(cfg Config, stdout, stderr, file io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	mk := func(w io.Writer, l slog.Level) slog.Handler {
		opts := &slog.HandlerOptions{Level: l}
		if cfg.Format == "json" {
			return slog.NewJSONHandler(w, opts)
		}
		return slog.NewTextHandler(w, opts)
	}

	var hs fanout
	if file == nil {
		hs = append(hs,
			levelRange{min: levelLowest, max: slog.LevelError, h: mk(stdout, level)},
			levelRange{min: slog.LevelError, max: levelHighest, h: mk(stderr, max(level, slog.LevelError))},
		)
	} else {
		hs = append(hs, mk(stderr, level), mk(file, level))
	}
	return slog.New(hs)
}

// SetupLogger opens the configured log file, if any, and builds the logger.
// The returned closers must be closed by the caller on exit.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	if cfg.File == "" {
		return New(cfg, os.Stdout, os.Stderr, nil), nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(cfg, os.Stdout, os.Stderr, f), []io.Closer{f}, nil
}
