// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"github.com/aclements/likesplot/scale"
	"github.com/aclements/likesplot/stats"
)

// Pair is a value keyed by two categories, such as average likes by
// platform and post type.
type Pair struct {
	Outer string
	Inner string
	Value float64
}

// Cell identifies one (outer, inner) combination.
type Cell struct {
	Outer, Inner string
}

// Table is a two-level categorical table built from Pairs.
type Table struct {
	// Outer and Inner are the distinct outer and inner categories
	// in group order.
	Outer, Inner []string

	// Values maps each present cell to its value. Cells absent
	// from the input are absent from Values.
	Values map[Cell]float64
}

// Value returns the value of cell (outer, inner) and whether it is
// present.
func (t *Table) Value(outer, inner string) (float64, bool) {
	v, ok := t.Values[Cell{outer, inner}]
	return v, ok
}

// Cells builds a Table from pairs. Each (outer, inner) combination
// may appear at most once; a repeated combination fails with a
// *scale.DuplicateCategoryError. Values must be finite.
func Cells(pairs []Pair, order Order) (*Table, error) {
	t := &Table{Values: make(map[Cell]float64, len(pairs))}
	outer := By(pairs, func(p Pair) string { return p.Outer }, order)
	inner := By(pairs, func(p Pair) string { return p.Inner }, order)
	t.Outer, t.Inner = outer.Keys(), inner.Keys()

	for i, p := range pairs {
		if err := stats.CheckFinite([]float64{p.Value}); err != nil {
			inv := err.(*stats.InvalidValueError)
			inv.Index = i
			return nil, &GroupError{p.Outer + "/" + p.Inner, inv}
		}
		c := Cell{p.Outer, p.Inner}
		if _, ok := t.Values[c]; ok {
			return nil, &scale.DuplicateCategoryError{Category: p.Outer + "/" + p.Inner}
		}
		t.Values[c] = p.Value
	}
	return t, nil
}

// Max returns the largest value in t, or 0 if t is empty.
func (t *Table) Max() float64 {
	max, first := 0.0, true
	for _, v := range t.Values {
		if first || v > max {
			max, first = v, false
		}
	}
	return max
}
