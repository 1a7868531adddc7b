// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/stats"
)

// Average groups the rows of t by the key columns and returns a
// table with one row per group: the key columns followed by column
// out, the mean of column val within the group. Groups appear in the
// order of the first row of each group, across all key columns
// together.
func Average(t *table.Table, val, out string, keys ...string) (*table.Table, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no key columns")
	}
	if t.Column(val) == nil {
		return nil, fmt.Errorf("no column %q", val)
	}
	keyVals := make([][]string, len(keys))
	for i, k := range keys {
		ss, err := Strings(t, k)
		if err != nil {
			return nil, err
		}
		keyVals[i] = ss
	}
	xs, err := Float64s(t, val)
	if err != nil {
		return nil, err
	}

	rows := make([]int, t.Len())
	for i := range rows {
		rows[i] = i
	}
	label := func(row int) []string {
		l := make([]string, len(keys))
		for i := range keys {
			l[i] = keyVals[i][row]
		}
		return l
	}
	g := group.By(rows, func(row int) string {
		return strings.Join(label(row), "\x00")
	}, group.FirstSeen)

	keyCols := make([][]string, len(keys))
	for i := range keyCols {
		keyCols[i] = []string{}
	}
	means := []float64{}
	for _, k := range g.Keys() {
		members := g.Get(k)
		sample := make([]float64, len(members))
		for i, row := range members {
			sample[i] = xs[row]
		}
		labels := label(members[0])
		m, err := stats.Mean(sample)
		if err != nil {
			return nil, fmt.Errorf("group %v: %w", labels, err)
		}
		for i, l := range labels {
			keyCols[i] = append(keyCols[i], l)
		}
		means = append(means, m)
	}

	b := new(table.Builder)
	for i, k := range keys {
		b.Add(k, keyCols[i])
	}
	b.Add(out, means)
	return b.Done(), nil
}

// WriteCSV writes t to w as CSV with a header row. Floating-point
// columns are written with the fewest digits that round-trip.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}
	vals := make([]reflect.Value, len(cols))
	for i, c := range cols {
		vals[i] = reflect.ValueOf(t.Column(c))
	}
	row := make([]string, len(cols))
	for r := 0; r < t.Len(); r++ {
		for i, v := range vals {
			switch x := v.Index(r).Interface().(type) {
			case float64:
				row[i] = strconv.FormatFloat(x, 'f', -1, 64)
			case string:
				row[i] = x
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
