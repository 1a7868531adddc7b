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

// BoxplotOptions configures NewBoxplot.
type BoxplotOptions struct {
	Options

	// Padding is the band padding between boxes, in [0, 1). Zero
	// means no padding.
	Padding float64
}

// DefaultBoxplotOptions returns the options of the standard box plot.
func DefaultBoxplotOptions() BoxplotOptions {
	return BoxplotOptions{Padding: 0.5}
}

// Box is one box-and-whisker mark.
type Box struct {
	Category string           `json:"category"`
	N        int              `json:"n"`
	Stats    stats.FiveNumber `json:"stats"`

	// X and Width are the horizontal extent of the box. Center is
	// the x position of the whisker.
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Center float64 `json:"center"`

	// Pixel y positions of the five statistics.
	YMin    float64 `json:"yMin"`
	YQ1     float64 `json:"yQ1"`
	YMedian float64 `json:"yMedian"`
	YQ3     float64 `json:"yQ3"`
	YMax    float64 `json:"yMax"`
}

// Boxplot is a side-by-side box plot of one numeric measurement
// across categories.
type Boxplot struct {
	Meta
	X     *scale.Band   `json:"-"`
	Y     *scale.Linear `json:"-"`
	Boxes []Box         `json:"boxes"`
}

// NewBoxplot builds a box plot of obs with one box per category.
//
// The y axis spans the smallest to the largest observation. It fails
// if obs is empty or if every observation has the same value.
func NewBoxplot(obs []group.Observation, opts BoxplotOptions) (*Boxplot, error) {
	opts.defaults("Distribution of the Number of Likes Across the Age Groups", "Age Group", DefaultFrame)
	if len(obs) == 0 {
		return nil, &stats.EmptyGroupError{}
	}

	summaries, err := group.Summaries(obs, opts.Order)
	if err != nil {
		return nil, err
	}
	domain := make([]string, len(summaries))
	lo, hi := summaries[0].Stats.Min, summaries[0].Stats.Max
	for i, s := range summaries {
		domain[i] = s.Category
		if s.Stats.Min < lo {
			lo = s.Stats.Min
		}
		if s.Stats.Max > hi {
			hi = s.Stats.Max
		}
	}

	x0, x1 := opts.Frame.XRange()
	x, err := scale.NewBand(domain, x0, x1, opts.Padding)
	if err != nil {
		return nil, err
	}
	y, err := valueScale(lo, hi, opts.Frame)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	p := &Boxplot{Meta: opts.meta(KindBoxplot), X: x, Y: y}
	p.XAxis.Ticks = bandTicks(x)
	p.YAxis.Ticks = linearTicks(y, opts.YTicks)
	for _, s := range summaries {
		band, _ := x.Lookup(s.Category)
		p.Boxes = append(p.Boxes, Box{
			Category: s.Category,
			N:        s.N,
			Stats:    s.Stats,
			X:        band.Start,
			Width:    band.Width,
			Center:   band.Center(),
			YMin:     y.Map(s.Stats.Min),
			YQ1:      y.Map(s.Stats.Q1),
			YMedian:  y.Map(s.Stats.Median),
			YQ3:      y.Map(s.Stats.Q3),
			YMax:     y.Map(s.Stats.Max),
		})
	}
	return p, nil
}
