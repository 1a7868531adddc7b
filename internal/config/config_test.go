// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if got := cfg.Data.Path(cfg.Data.Raw); got != "socialMedia.csv" {
		t.Errorf("raw data path = %q", got)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "likesplot.yaml")
	yaml := `
data:
  dir: /srv/data
output:
  formats: [svg, png]
  png_scale: 3
log:
  level: debug
  timestamp: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LIKESPLOT_LOG_LEVEL", "warn")
	t.Setenv("LIKESPLOT_SERVER_ADDR", ":9090")
	t.Setenv("LIKESPLOT_CHARTS_PALETTE", "#000000, #ffffff")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Dir != "/srv/data" || cfg.Data.Raw != "socialMedia.csv" {
		t.Errorf("data = %+v", cfg.Data)
	}
	if !reflect.DeepEqual(cfg.Output.Formats, []string{"svg", "png"}) || cfg.Output.PNGScale != 3 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("environment did not override file: level %q", cfg.Log.Level)
	}
	if cfg.Log.Timestamp {
		t.Errorf("log.timestamp not read from file")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server addr %q", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.Charts.Palette, []string{"#000000", "#ffffff"}) {
		t.Errorf("palette %q", cfg.Charts.Palette)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, test := range []struct {
		env, val, key string
	}{
		{"LIKESPLOT_OUTPUT_FORMATS", "svg,gif", "output.formats"},
		{"LIKESPLOT_OUTPUT_PNG_SCALE", "0", "output.png_scale"},
		{"LIKESPLOT_LOG_FORMAT", "xml", "log.format"},
		{"LIKESPLOT_CHARTS_PALETTE", "red", "charts.palette"},
	} {
		t.Run(test.env, func(t *testing.T) {
			t.Setenv(test.env, test.val)
			_, err := Load("")
			if err == nil {
				t.Fatalf("Load succeeded with %s=%s", test.env, test.val)
			}
			if !strings.Contains(err.Error(), test.key) {
				t.Errorf("error %q does not name %s", err, test.key)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load of missing file succeeded")
	}
}

func TestEnvKey(t *testing.T) {
	for in, want := range map[string]string{
		"LIKESPLOT_DATA_DIR":         "data.dir",
		"LIKESPLOT_OUTPUT_PNG_SCALE": "output.png_scale",
		"LIKESPLOT_CHARTS_Y_TICKS":   "charts.y_ticks",
	} {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%s) = %s, want %s", in, got, want)
		}
	}
}
