// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aclements/likesplot/render"
)

// errNoCharts is returned when every pipeline failed.
var errNoCharts = errors.New("no charts could be drawn")

func (a *app) renderCmd() *cobra.Command {
	var (
		flagOut     string
		flagFormats []string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the charts and the page to files",
		Long: `render builds all three charts and writes them to the output directory
as <kind>.svg and <kind>.png, together with index.html, a page holding
every chart. A chart that cannot be drawn is reported and left out,
and the page shows a notice in its place. render fails only if no
chart could be drawn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("out") {
				a.cfg.Output.Dir = flagOut
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Formats = flagFormats
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.render(cmd)
		},
	}
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "write output to `dir`")
	cmd.Flags().StringSliceVar(&flagFormats, "format", nil, "output `formats` (svg, png, html)")
	return cmd
}

func (a *app) render(cmd *cobra.Command) error {
	out := a.cfg.Output
	if err := os.MkdirAll(out.Dir, 0o777); err != nil {
		return err
	}
	sections := a.buildCharts(cmd.Context())

	drawn := 0
	for _, s := range sections {
		if s.Err != nil {
			fmt.Fprintf(a.stderr, "%s: could not draw chart from %s: %v\n", s.Kind, s.Dataset, s.Err)
			continue
		}
		drawn++
		if slices.Contains(out.Formats, "svg") {
			if err := a.writeFile(filepath.Join(out.Dir, string(s.Kind)+".svg"), "svg", func(w io.Writer) error {
				return render.WriteSVG(w, s.Chart)
			}); err != nil {
				return err
			}
		}
		if slices.Contains(out.Formats, "png") {
			if err := a.writeFile(filepath.Join(out.Dir, string(s.Kind)+".png"), "png", func(w io.Writer) error {
				return render.WritePNG(w, s.Chart, render.PNGOptions{Supersample: out.PNGScale})
			}); err != nil {
				return err
			}
		}
	}
	if slices.Contains(out.Formats, "html") {
		page := render.Page{Title: "Social Media Likes", Sections: sections}
		if err := a.writeFile(filepath.Join(out.Dir, "index.html"), "html", func(w io.Writer) error {
			return render.WritePage(w, page)
		}); err != nil {
			return err
		}
	}
	if drawn == 0 {
		return errNoCharts
	}
	a.log.Info().Int("charts", drawn).Int("failed", len(sections)-drawn).Str("dir", out.Dir).Msg("rendered")
	return nil
}

// writeFile creates path and writes it with write.
func (a *app) writeFile(path, format string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if err1 := f.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	chartsWritten.WithLabelValues(format).Inc()
	a.log.Debug().Str("file", path).Msg("wrote")
	return nil
}
