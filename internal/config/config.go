// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads likesplot's settings.
//
// Settings are layered: built-in defaults, then an optional YAML
// file, then LIKESPLOT_* environment variables. An environment
// variable names a section and a key separated by the first
// underscore, so LIKESPLOT_OUTPUT_PNG_SCALE sets output.png_scale.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LIKESPLOT_"

type Config struct {
	Data   Data   `koanf:"data"`
	Charts Charts `koanf:"charts"`
	Output Output `koanf:"output"`
	Server Server `koanf:"server"`
	Log    Log    `koanf:"log"`
}

// Data locates the three input CSV files.
type Data struct {
	Dir  string `koanf:"dir" validate:"required"`
	Raw  string `koanf:"raw" validate:"required"`
	Avg  string `koanf:"avg" validate:"required"`
	Time string `koanf:"time" validate:"required"`
}

// Path returns the path of name within the data directory.
func (d Data) Path(name string) string {
	return filepath.Join(d.Dir, name)
}

type Charts struct {
	Width        float64  `koanf:"width" validate:"gt=0"`
	Height       float64  `koanf:"height" validate:"gt=0"`
	BoxPadding   float64  `koanf:"box_padding" validate:"gte=0,lt=1"`
	OuterPadding float64  `koanf:"outer_padding" validate:"gte=0,lt=1"`
	InnerPadding float64  `koanf:"inner_padding" validate:"gte=0,lt=1"`
	YTicks       int      `koanf:"y_ticks" validate:"gte=1"`
	Palette      []string `koanf:"palette" validate:"dive,hexcolor"`
}

type Output struct {
	Dir     string   `koanf:"dir" validate:"required"`
	Formats []string `koanf:"formats" validate:"min=1,dive,oneof=svg png html"`
	// PNGScale is the supersampling factor for PNG output.
	PNGScale int `koanf:"png_scale" validate:"gte=1,lte=8"`
}

type Server struct {
	Addr string `koanf:"addr" validate:"required,hostname_port"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=console json"`
	// Timestamp adds the time to each record.
	Timestamp bool `koanf:"timestamp"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Data: Data{
			Dir:  ".",
			Raw:  "socialMedia.csv",
			Avg:  "socialMediaAvg.csv",
			Time: "socialMediaTime.csv",
		},
		Charts: Charts{
			Width:        600,
			Height:       400,
			BoxPadding:   0.5,
			OuterPadding: 0.5,
			InnerPadding: 0.05,
			YTicks:       10,
			Palette:      []string{"#1f77b4", "#ff7f0e", "#2ca02c"},
		},
		Output: Output{
			Dir:      "out",
			Formats:  []string{"svg", "html"},
			PNGScale: 2,
		},
		Server: Server{Addr: "localhost:8080"},
		Log:    Log{Level: "info", Format: "console", Timestamp: true},
	}
}

// listKeys are read from the environment as comma-separated lists.
var listKeys = []string{"charts.palette", "output.formats"}

// Load returns the settings layered from the defaults, the YAML file
// at path if path is not empty, and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	for _, key := range listKeys {
		if s, ok := k.Get(key).(string); ok {
			if err := k.Set(key, splitList(s)); err != nil {
				return nil, err
			}
		}
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps LIKESPLOT_SECTION_KEY to section.key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}()

// Validate reports the first invalid setting, named by its key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid setting %s: %v fails %q", fieldKey(fe.Namespace()), fe.Value(), fe.Tag())
	}
	return err
}

// fieldKey turns a validator namespace like Config.output.png_scale
// into the settings key output.png_scale.
func fieldKey(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
