// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	} {
		got, err := ParseLevel(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", test.in, got, err, test.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(loud) succeeded")
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug().Msg("hidden")
	cl := Chart(l, "boxplot", "socialMedia.csv")
	cl.Info().Int("rows", 3).Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	for k, want := range map[string]any{
		"level": "info", "message": "loaded", "chart": "boxplot",
		"dataset": "socialMedia.csv", "rows": float64(3),
	} {
		if rec[k] != want {
			t.Errorf("field %s = %v, want %v", k, rec[k], want)
		}
	}
	if run, _ := rec["run"].(string); len(run) != 36 {
		t.Errorf("run id %q is not a UUID", rec["run"])
	}
	if _, ok := rec["time"]; ok {
		t.Errorf("unexpected timestamp")
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Warn().Str("chart", "lineplot").Msg("chart failed")
	out := buf.String()
	if !strings.Contains(out, "chart failed") || !strings.Contains(out, "chart=lineplot") {
		t.Errorf("console output %q", out)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Errorf("New with bad level succeeded")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Errorf("New with bad format succeeded")
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), l.With().Str("request", "r1").Logger())
	fl := FromContext(ctx, zerolog.Nop())
	fl.Info().Msg("from context")
	if out := buf.String(); !strings.Contains(out, "from context") || !strings.Contains(out, `"request":"r1"`) {
		t.Errorf("context logger wrote %q", out)
	}

	buf.Reset()
	fb := FromContext(context.Background(), l)
	fb.Info().Msg("fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("fallback logger did not write: %q", buf.String())
	}
}

func TestTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Format: "json", Timestamp: true, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Info().Msg("stamped")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if _, ok := rec["time"]; !ok {
		t.Errorf("no time field in %s", buf.String())
	}
}
