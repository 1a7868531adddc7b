// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads the social media CSV files into go-gg tables
// and converts their columns into the inputs of the chart pipelines.
//
// Every column is loaded as text. Numeric columns are coerced
// explicitly so that values that are not numbers are reported with
// their row and column instead of silently becoming NaN.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/stats"
)

// Column names of the social media datasets.
const (
	ColPlatform = "Platform"
	ColPostType = "PostType"
	ColAgeGroup = "AgeGroup"
	ColLikes    = "Likes"
	ColDate     = "Date"
	ColAvgLikes = "AvgLikes"
)

// Load reads a CSV file with a header row from r. All columns are
// []string.
func Load(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := rows[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	seen := make(map[string]bool)
	for _, h := range header {
		if h == "" {
			return nil, fmt.Errorf("empty column name in header")
		}
		if seen[h] {
			return nil, fmt.Errorf("duplicate column %q in header", h)
		}
		seen[h] = true
	}
	return table.TableFromStrings(header, rows[1:], false), nil
}

// LoadFile reads the CSV file at path.
func LoadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// RowError reports a bad value in a data row. Row is 1-based and
// does not count the header.
type RowError struct {
	Column string
	Row    int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("column %s, row %d: %v", e.Column, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ParseFloat parses raw as a finite number. Surrounding space is
// ignored. Text that is not a number, as well as NaN and infinities,
// fail with a *stats.InvalidValueError.
func ParseFloat(raw string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &stats.InvalidValueError{Index: -1, Raw: raw, Unparsed: true}
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &stats.InvalidValueError{Index: -1, Value: x, Raw: raw}
	}
	return x, nil
}

// Strings returns column col of t as strings.
func Strings(t *table.Table, col string) ([]string, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("no column %q", col)
	}
	if ss, ok := c.([]string); ok {
		return ss, nil
	}
	v := reflect.ValueOf(c)
	ss := make([]string, v.Len())
	for i := range ss {
		ss[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return ss, nil
}

// Float64s coerces column col of t to numbers.
func Float64s(t *table.Table, col string) ([]float64, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("no column %q", col)
	}
	if xs, ok := c.([]float64); ok {
		if err := stats.CheckFinite(xs); err != nil {
			inv := err.(*stats.InvalidValueError)
			return nil, &RowError{col, inv.Index + 1, err}
		}
		return xs, nil
	}
	raw, err := Strings(t, col)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(raw))
	for i, r := range raw {
		x, err := ParseFloat(r)
		if err != nil {
			inv := err.(*stats.InvalidValueError)
			inv.Name, inv.Index = col, i
			return nil, &RowError{col, i + 1, err}
		}
		xs[i] = x
	}
	return xs, nil
}

// Observations pairs category column cat with numeric column val.
func Observations(t *table.Table, cat, val string) ([]group.Observation, error) {
	cats, err := Strings(t, cat)
	if err != nil {
		return nil, err
	}
	vals, err := Float64s(t, val)
	if err != nil {
		return nil, err
	}
	out := make([]group.Observation, len(cats))
	for i := range cats {
		out[i] = group.Observation{Category: cats[i], Value: vals[i]}
	}
	return out, nil
}

// Pairs extracts (outer, inner, val) triples from t.
func Pairs(t *table.Table, outer, inner, val string) ([]group.Pair, error) {
	outs, err := Strings(t, outer)
	if err != nil {
		return nil, err
	}
	is, err := Strings(t, inner)
	if err != nil {
		return nil, err
	}
	vs, err := Float64s(t, val)
	if err != nil {
		return nil, err
	}
	out := make([]group.Pair, len(outs))
	for i := range outs {
		out[i] = group.Pair{Outer: outs[i], Inner: is[i], Value: vs[i]}
	}
	return out, nil
}
