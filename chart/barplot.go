// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/scale"
	"github.com/aclements/likesplot/stats"
)

// GroupedBarOptions configures NewGroupedBar.
type GroupedBarOptions struct {
	Options

	// OuterPadding is the band padding between outer categories.
	// InnerPadding is the band padding between bars within an
	// outer category. Both are in [0, 1); zero means no padding.
	OuterPadding float64
	InnerPadding float64

	// Palette colors the inner categories in order of first
	// appearance. If empty, the first three Category10 colors are
	// used.
	Palette []string
}

// DefaultGroupedBarOptions returns the options of the standard
// grouped bar chart.
func DefaultGroupedBarOptions() GroupedBarOptions {
	return GroupedBarOptions{OuterPadding: 0.5, InnerPadding: 0.05}
}

// Bar is one bar of a grouped bar chart.
type Bar struct {
	Outer string  `json:"outer"`
	Inner string  `json:"inner"`
	Value float64 `json:"value"`
	Color string  `json:"color"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LegendEntry is a color swatch and its label. The swatch is a
// Size×Size square at (X, Y); the label is drawn at (TextX, TextY).
type LegendEntry struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	TextX float64 `json:"textX"`
	TextY float64 `json:"textY"`
}

// GroupedBar is a bar chart of values keyed by an outer and an inner
// category, with the bars of each outer category side by side.
type GroupedBar struct {
	Meta
	X0     *scale.Band    `json:"-"`
	X1     *scale.Nested  `json:"-"`
	Y      *scale.Linear  `json:"-"`
	Color  *scale.Ordinal `json:"-"`
	Bars   []Bar          `json:"bars"`
	Legend []LegendEntry  `json:"legend"`
}

// Legend layout, relative to the legend origin.
const (
	legendRight  = 68
	legendStep   = 20
	legendSwatch = 12
	legendTextDX = 20
)

// NewGroupedBar builds a grouped bar chart from pairs. Each (outer,
// inner) combination may appear at most once. The y axis starts at
// zero and ends at the largest value.
func NewGroupedBar(pairs []group.Pair, opts GroupedBarOptions) (*GroupedBar, error) {
	opts.defaults("Average Likes by Platform and Post Type", "Platform", DefaultFrame)
	if len(opts.Palette) == 0 {
		opts.Palette = scale.Category10[:3]
	}
	if len(pairs) == 0 {
		return nil, &stats.EmptyGroupError{}
	}

	cells, err := group.Cells(pairs, opts.Order)
	if err != nil {
		return nil, err
	}

	x0lo, x0hi := opts.Frame.XRange()
	x0, err := scale.NewBand(cells.Outer, x0lo, x0hi, opts.OuterPadding)
	if err != nil {
		return nil, err
	}
	x1, err := scale.NewNested(x0, cells.Inner, opts.InnerPadding)
	if err != nil {
		return nil, err
	}
	y, err := valueScale(0, cells.Max(), opts.Frame)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	color, err := scale.NewOrdinal(cells.Inner, opts.Palette)
	if err != nil {
		return nil, err
	}

	p := &GroupedBar{Meta: opts.meta(KindBarplot), X0: x0, X1: x1, Y: y, Color: color}
	p.XAxis.Ticks = bandTicks(x0)
	p.YAxis.Ticks = linearTicks(y, opts.YTicks)

	base, _ := opts.Frame.YRange()
	for _, pr := range pairs {
		band, _ := x1.Lookup(pr.Outer, pr.Inner)
		c, _ := color.Color(pr.Inner)
		top := y.Map(pr.Value)
		p.Bars = append(p.Bars, Bar{
			Outer:  pr.Outer,
			Inner:  pr.Inner,
			Value:  pr.Value,
			Color:  c,
			X:      band.Start,
			Y:      top,
			Width:  band.Width,
			Height: base - top,
		})
	}

	lx := opts.Frame.Width - legendRight
	ly := opts.Frame.Margin.Top
	for i, inner := range cells.Inner {
		c, _ := color.Color(inner)
		ey := ly + float64(i*legendStep)
		p.Legend = append(p.Legend, LegendEntry{
			Label: inner,
			Color: c,
			X:     lx,
			Y:     ey,
			Size:  legendSwatch,
			TextX: lx + legendTextDX,
			TextY: ey + legendSwatch,
		})
	}
	return p, nil
}
