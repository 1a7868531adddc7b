// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/scale"
	"github.com/aclements/likesplot/stats"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

var likes = []group.Observation{
	{"18-24", 100}, {"25-34", 500}, {"18-24", 300}, {"35-44", 1000},
	{"25-34", 0}, {"18-24", 200}, {"35-44", 600}, {"25-34", 250},
}

func TestBoxplot(t *testing.T) {
	p, err := NewBoxplot(likes, DefaultBoxplotOptions())
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != KindBoxplot || p.Title == "" || p.XAxis.Label != "Age Group" {
		t.Errorf("unexpected meta %+v", p.Meta)
	}
	if len(p.Boxes) != 3 {
		t.Fatalf("%d boxes, want 3", len(p.Boxes))
	}

	// Domain [0, 1000] onto [350, 30].
	b := p.Boxes[0]
	if b.Category != "18-24" || b.N != 3 {
		t.Errorf("first box = %s (n=%d), want 18-24 (n=3)", b.Category, b.N)
	}
	if want := (stats.FiveNumber{Min: 100, Q1: 150, Median: 200, Q3: 250, Max: 300}); b.Stats != want {
		t.Errorf("18-24 stats = %+v, want %+v", b.Stats, want)
	}
	if !near(b.YMin, 318) || !near(b.YMedian, 286) || !near(b.YMax, 254) {
		t.Errorf("18-24 y = %v, %v, %v; want 318, 286, 254", b.YMin, b.YMedian, b.YMax)
	}
	if !near(b.X, 102.5) || !near(b.Width, 85) || !near(b.Center, 145) {
		t.Errorf("18-24 x = %v, width %v, center %v", b.X, b.Width, b.Center)
	}

	for _, b := range p.Boxes {
		// Pixel y decreases as values grow.
		if !(b.YMin >= b.YQ1 && b.YQ1 >= b.YMedian && b.YMedian >= b.YQ3 && b.YQ3 >= b.YMax) {
			t.Errorf("box %s: pixel positions out of order: %+v", b.Category, b)
		}
	}
	if len(p.XAxis.Ticks) != 3 || p.XAxis.Ticks[1].Label != "25-34" {
		t.Errorf("x ticks = %v", p.XAxis.Ticks)
	}
	if len(p.YAxis.Ticks) == 0 {
		t.Errorf("no y ticks")
	}
}

func TestBoxplotErrors(t *testing.T) {
	var empty *stats.EmptyGroupError
	if _, err := NewBoxplot(nil, BoxplotOptions{}); !errors.As(err, &empty) {
		t.Errorf("empty boxplot: error = %v", err)
	}
	var deg *scale.DegenerateDomainError
	flat := []group.Observation{{"a", 5}, {"b", 5}}
	if _, err := NewBoxplot(flat, BoxplotOptions{}); !errors.As(err, &deg) {
		t.Errorf("constant boxplot: error = %v", err)
	}
	var inv *stats.InvalidValueError
	bad := []group.Observation{{"a", 5}, {"b", math.NaN()}}
	if _, err := NewBoxplot(bad, BoxplotOptions{}); !errors.As(err, &inv) {
		t.Errorf("NaN boxplot: error = %v", err)
	}
}

func TestBoxplotSorted(t *testing.T) {
	in := []group.Observation{{"b", 1}, {"a", 2}}
	opts := DefaultBoxplotOptions()
	opts.Order = group.Sorted
	p, err := NewBoxplot(in, opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.Boxes[0].Category != "a" {
		t.Errorf("sorted boxplot starts with %s", p.Boxes[0].Category)
	}
}

var avgLikes = []group.Pair{
	{"Facebook", "Image", 300}, {"Facebook", "Link", 150}, {"Facebook", "Video", 450},
	{"Instagram", "Image", 600}, {"Instagram", "Link", 100}, {"Instagram", "Video", 500},
	{"LinkedIn", "Image", 200}, {"LinkedIn", "Link", 250}, {"LinkedIn", "Video", 350},
	{"Twitter", "Image", 120}, {"Twitter", "Link", 90}, {"Twitter", "Video", 400},
}

func TestGroupedBar(t *testing.T) {
	p, err := NewGroupedBar(avgLikes, DefaultGroupedBarOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Bars) != 12 {
		t.Fatalf("%d bars, want 12", len(p.Bars))
	}
	// Outer: [60, 570] in 4 steps of 127.5, bandwidth 63.75.
	if !near(p.X0.Bandwidth(), 63.75) {
		t.Errorf("outer bandwidth = %v", p.X0.Bandwidth())
	}
	for _, bar := range p.Bars {
		ob, _ := p.X0.Lookup(bar.Outer)
		if bar.X < ob.Start-eps || bar.X+bar.Width > ob.End()+eps {
			t.Errorf("bar %s/%s [%v, %v] outside outer band [%v, %v]",
				bar.Outer, bar.Inner, bar.X, bar.X+bar.Width, ob.Start, ob.End())
		}
		if !near(bar.Y+bar.Height, 350) {
			t.Errorf("bar %s/%s does not sit on the x axis: y %v height %v", bar.Outer, bar.Inner, bar.Y, bar.Height)
		}
	}
	top := p.Bars[3] // Instagram/Image, the maximum.
	if !near(top.Y, 30) || !near(top.Height, 320) {
		t.Errorf("tallest bar y %v height %v; want 30, 320", top.Y, top.Height)
	}

	wantColors := map[string]string{"Image": "#1f77b4", "Link": "#ff7f0e", "Video": "#2ca02c"}
	for _, bar := range p.Bars {
		if bar.Color != wantColors[bar.Inner] {
			t.Errorf("bar %s/%s color %s, want %s", bar.Outer, bar.Inner, bar.Color, wantColors[bar.Inner])
		}
	}

	if len(p.Legend) != 3 {
		t.Fatalf("%d legend entries, want 3", len(p.Legend))
	}
	for i, e := range p.Legend {
		if e.X != 532 || e.Y != 30+float64(20*i) || e.TextX != 552 {
			t.Errorf("legend %d at (%v, %v), text x %v", i, e.X, e.Y, e.TextX)
		}
	}
}

func TestGroupedBarErrors(t *testing.T) {
	dup := append(append([]group.Pair(nil), avgLikes...), group.Pair{"Twitter", "Link", 1})
	var de *scale.DuplicateCategoryError
	if _, err := NewGroupedBar(dup, GroupedBarOptions{}); !errors.As(err, &de) {
		t.Errorf("duplicate cell: error = %v", err)
	}
	var deg *scale.DegenerateDomainError
	if _, err := NewGroupedBar([]group.Pair{{"a", "b", 0}}, GroupedBarOptions{}); !errors.As(err, &deg) {
		t.Errorf("all-zero bars: error = %v", err)
	}
	var empty *stats.EmptyGroupError
	if _, err := NewGroupedBar(nil, GroupedBarOptions{}); !errors.As(err, &empty) {
		t.Errorf("no bars: error = %v", err)
	}
}

func TestZeroPadding(t *testing.T) {
	box, err := NewBoxplot(likes, BoxplotOptions{Padding: 0})
	if err != nil {
		t.Fatal(err)
	}
	if box.X.Padding() != 0 || !near(box.X.Bandwidth(), box.X.Step()) {
		t.Errorf("box plot padding %v: bandwidth %v, step %v", box.X.Padding(), box.X.Bandwidth(), box.X.Step())
	}
	if b := box.Boxes[0]; !near(b.X, 60) || !near(b.Width, 170) {
		t.Errorf("unpadded box x %v width %v; want 60, 170", b.X, b.Width)
	}

	bar, err := NewGroupedBar(avgLikes, GroupedBarOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !near(bar.X0.Bandwidth(), bar.X0.Step()) || !near(bar.X0.Bandwidth(), 127.5) {
		t.Errorf("outer bandwidth %v, step %v; want both 127.5", bar.X0.Bandwidth(), bar.X0.Step())
	}
	if in := bar.X1.Inner(); !near(in.Bandwidth(), in.Step()) {
		t.Errorf("inner bandwidth %v, step %v", in.Bandwidth(), in.Step())
	}
}

var daily = []group.Observation{
	{"3/1/2024 (Friday)", 300}, {"3/2/2024 (Saturday)", 450}, {"3/3/2024 (Sunday)", 500},
	{"3/4/2024 (Monday)", 200}, {"3/5/2024 (Tuesday)", 350}, {"3/6/2024 (Wednesday)", 250},
	{"3/7/2024 (Thursday)", 400},
}

func TestTimeSeries(t *testing.T) {
	p, err := NewTimeSeries(daily, TimeSeriesOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Frame != LineFrame || p.XAxis.LabelAngle != -25 {
		t.Errorf("frame %+v, label angle %v", p.Frame, p.XAxis.LabelAngle)
	}
	if len(p.Points) != len(daily) {
		t.Fatalf("%d points, want %d", len(p.Points), len(daily))
	}
	// [60, 570] in 7 steps; y [0, 500] onto [310, 40].
	step := 510.0 / 7
	for i, pt := range p.Points {
		if pt.Category != daily[i].Category {
			t.Errorf("point %d is %s, want %s", i, pt.Category, daily[i].Category)
		}
		if !near(pt.X, 60+step*(float64(i)+0.5)) {
			t.Errorf("point %d x = %v", i, pt.X)
		}
		if i > 0 && pt.X <= p.Points[i-1].X {
			t.Errorf("points not in increasing x order")
		}
	}
	if !near(p.Points[2].Y, 40) || !near(p.Points[3].Y, 310-270*0.4) {
		t.Errorf("y positions %v, %v", p.Points[2].Y, p.Points[3].Y)
	}
}

func TestTimeSeriesDuplicateDate(t *testing.T) {
	in := append(append([]group.Observation(nil), daily...), daily[0])
	var dup *scale.DuplicateCategoryError
	if _, err := NewTimeSeries(in, TimeSeriesOptions{}); !errors.As(err, &dup) {
		t.Errorf("duplicate date: error = %v", err)
	}
}
