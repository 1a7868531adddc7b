// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aclements/likesplot/dataset"
	"github.com/aclements/likesplot/group"
)

func (a *app) summaryCmd() *cobra.Command {
	var flagJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the five-number summary of likes by age group",
		Long: `summary prints the minimum, lower quartile, median, upper quartile and
maximum of the likes of each age group in socialMedia.csv, the values
drawn by the box plot. Age groups appear in the order they first occur
in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := a.summaries()
			if err != nil {
				return err
			}
			if flagJSON {
				return writeSummaryJSON(a.stdout, ss)
			}
			table.Fprint(a.stdout, summaryTable(ss))
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// summaryTable converts ss into a table with one row per category.
func summaryTable(ss []group.Summary) *table.Table {
	cats, ns := []string{}, []int{}
	cols := make([][]float64, 6)
	for _, s := range ss {
		cats = append(cats, s.Category)
		ns = append(ns, s.N)
		f := s.Stats
		for i, v := range []float64{f.Min, f.Q1, f.Median, f.Q3, f.Max, f.IQR()} {
			cols[i] = append(cols[i], v)
		}
	}
	for i := range cols {
		if cols[i] == nil {
			cols[i] = []float64{}
		}
	}
	return new(table.Builder).
		Add(dataset.ColAgeGroup, cats).
		Add("N", ns).
		Add("Min", cols[0]).
		Add("Q1", cols[1]).
		Add("Median", cols[2]).
		Add("Q3", cols[3]).
		Add("Max", cols[4]).
		Add("IQR", cols[5]).
		Done()
}

func writeSummaryJSON(w io.Writer, ss []group.Summary) error {
	if ss == nil {
		ss = []group.Summary{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ss)
}
