// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package group

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/aclements/likesplot/scale"
	"github.com/aclements/likesplot/stats"
)

func obs(kv ...interface{}) []Observation {
	var out []Observation
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Observation{kv[i].(string), float64(kv[i+1].(int))})
	}
	return out
}

func TestByOrder(t *testing.T) {
	in := obs("b", 1, "a", 2, "c", 3, "a", 4, "b", 5)
	for _, test := range []struct {
		order Order
		want  []string
	}{
		{FirstSeen, []string{"b", "a", "c"}},
		{Sorted, []string{"a", "b", "c"}},
	} {
		g := By(in, func(o Observation) string { return o.Category }, test.order)
		if got := g.Keys(); !reflect.DeepEqual(got, test.want) {
			t.Errorf("%v: keys = %v, want %v", test.order, got, test.want)
		}
		if want := obs("a", 2, "a", 4); !reflect.DeepEqual(g.Get("a"), want) {
			t.Errorf("%v: Get(a) = %v, want %v", test.order, g.Get("a"), want)
		}
	}
}

// TestByPartition checks that grouping neither drops nor duplicates
// observations.
func TestByPartition(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		in := make([]Observation, r.Intn(100))
		for i := range in {
			in[i] = Observation{fmt.Sprint(r.Intn(8)), float64(i)}
		}
		g := By(in, func(o Observation) string { return o.Category }, FirstSeen)
		if g.Size() != len(in) {
			t.Fatalf("group sizes sum to %d, want %d", g.Size(), len(in))
		}
		seen := make(map[float64]bool)
		for _, k := range g.Keys() {
			for _, o := range g.Get(k) {
				if o.Category != k {
					t.Fatalf("observation %v in group %q", o, k)
				}
				if seen[o.Value] {
					t.Fatalf("observation %v appears twice", o)
				}
				seen[o.Value] = true
			}
		}
		if len(seen) != len(in) {
			t.Fatalf("%d observations grouped, want %d", len(seen), len(in))
		}
		for _, o := range in {
			n := 0
			for _, k := range g.Keys() {
				if k == o.Category {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("category %q is %d group keys", o.Category, n)
			}
		}
	}
}

func TestSummaries(t *testing.T) {
	in := obs("25-34", 10, "18-24", 1, "18-24", 2, "25-34", 20, "18-24", 3, "18-24", 4)
	got, err := Summaries(in, FirstSeen)
	if err != nil {
		t.Fatal(err)
	}
	want := []Summary{
		{"25-34", 2, stats.FiveNumber{Min: 10, Q1: 12.5, Median: 15, Q3: 17.5, Max: 20}},
		{"18-24", 4, stats.FiveNumber{Min: 1, Q1: 1.75, Median: 2.5, Q3: 3.25, Max: 4}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summaries = %+v, want %+v", got, want)
	}

	in = append(in, Observation{"18-24", math.NaN()})
	_, err = Summaries(in, FirstSeen)
	var ge *GroupError
	var inv *stats.InvalidValueError
	if !errors.As(err, &ge) || ge.Group != "18-24" || !errors.As(err, &inv) {
		t.Errorf("Summaries with NaN: error = %v, want GroupError wrapping InvalidValueError", err)
	}
}

func TestSummariesEmpty(t *testing.T) {
	got, err := Summaries(nil, FirstSeen)
	if err != nil || len(got) != 0 {
		t.Errorf("Summaries(nil) = %v, %v; want no groups", got, err)
	}
}

func TestMeans(t *testing.T) {
	in := obs("3/2", 30, "3/1", 10, "3/1", 20, "3/2", 40)
	got, err := Means(in, FirstSeen)
	if err != nil {
		t.Fatal(err)
	}
	want := []Mean{{"3/2", 2, 35}, {"3/1", 2, 15}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Means = %+v, want %+v", got, want)
	}
	got, _ = Means(in, Sorted)
	if got[0].Category != "3/1" {
		t.Errorf("sorted Means starts with %q, want 3/1", got[0].Category)
	}
}

func TestCells(t *testing.T) {
	pairs := []Pair{
		{"Twitter", "Video", 3},
		{"Facebook", "Image", 1},
		{"Twitter", "Image", 2},
		{"Facebook", "Link", 5},
	}
	tab, err := Cells(pairs, FirstSeen)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Twitter", "Facebook"}; !reflect.DeepEqual(tab.Outer, want) {
		t.Errorf("Outer = %v, want %v", tab.Outer, want)
	}
	if want := []string{"Video", "Image", "Link"}; !reflect.DeepEqual(tab.Inner, want) {
		t.Errorf("Inner = %v, want %v", tab.Inner, want)
	}
	if v, ok := tab.Value("Facebook", "Link"); !ok || v != 5 {
		t.Errorf("Value(Facebook, Link) = %v, %v", v, ok)
	}
	if _, ok := tab.Value("Facebook", "Video"); ok {
		t.Errorf("Value(Facebook, Video) present")
	}
	if tab.Max() != 5 {
		t.Errorf("Max() = %v, want 5", tab.Max())
	}

	_, err = Cells(append(pairs, Pair{"Twitter", "Image", 9}), FirstSeen)
	var dup *scale.DuplicateCategoryError
	if !errors.As(err, &dup) || dup.Category != "Twitter/Image" {
		t.Errorf("duplicate cell: error = %v", err)
	}

	_, err = Cells(append(pairs, Pair{"Twitter", "Poll", math.Inf(1)}), FirstSeen)
	var inv *stats.InvalidValueError
	if !errors.As(err, &inv) || inv.Index != 4 {
		t.Errorf("infinite cell: error = %v", err)
	}
}

func TestCategories(t *testing.T) {
	in := obs("x", 1, "y", 1, "x", 1)
	if got := Categories(in, FirstSeen); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Categories = %v", got)
	}
}
