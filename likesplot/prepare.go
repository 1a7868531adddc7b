// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aclements/likesplot/dataset"
)

func (a *app) prepareCmd() *cobra.Command {
	var flagOut string
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Derive the averaged datasets from socialMedia.csv",
		Long: `prepare reads socialMedia.csv and writes socialMediaAvg.csv, the mean
likes of each Platform and PostType, and socialMediaTime.csv, the mean
likes of each Date. Groups appear in the order they first occur in
socialMedia.csv. The files are written to the data directory unless
-o is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Data.Dir
			if cmd.Flags().Changed("out") {
				dir = flagOut
			}
			return a.prepare(dir)
		},
	}
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the derived files to `dir`")
	return cmd
}

func (a *app) prepare(dir string) error {
	d := a.cfg.Data
	t, err := dataset.LoadFile(d.Path(d.Raw))
	if err != nil {
		return err
	}
	for _, derived := range []struct {
		name string
		keys []string
	}{
		{d.Avg, []string{dataset.ColPlatform, dataset.ColPostType}},
		{d.Time, []string{dataset.ColDate}},
	} {
		avg, err := dataset.Average(t, dataset.ColLikes, dataset.ColAvgLikes, derived.keys...)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, derived.name)
		if err := a.writeFile(path, "csv", func(w io.Writer) error {
			return dataset.WriteCSV(w, avg)
		}); err != nil {
			return err
		}
		a.log.Info().Str("file", path).Int("rows", avg.Len()).Strs("by", derived.keys).Msg("derived")
	}
	return nil
}
