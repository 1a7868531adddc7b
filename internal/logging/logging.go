// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the zerolog loggers used by likesplot.
//
// Every logger carries a run ID so the lines of one invocation can be
// picked out of a shared log. Pipelines log through a child logger
// that adds the chart kind and dataset.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config selects the level, format and destination of log output.
type Config struct {
	// Level is one of trace, debug, info, warn, error or disabled.
	// Empty means info.
	Level string

	// Format is json or console. Empty means console.
	Format string

	// Timestamp adds a time field to every line.
	Timestamp bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zc := zerolog.New(out).Level(level).With().Str("run", uuid.NewString())
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	return zc.Logger(), nil
}

// ParseLevel converts a level name to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

// Chart returns a child of l for the pipeline drawing kind from
// dataset.
func Chart(l zerolog.Logger, kind, dataset string) zerolog.Logger {
	return l.With().Str("chart", kind).Str("dataset", dataset).Logger()
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger carried by ctx, or fallback if ctx
// carries none.
func FromContext(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return fallback
}
