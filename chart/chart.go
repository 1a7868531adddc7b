// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart computes the geometry of the three social media
// charts as plain data.
//
// A chart model holds everything a renderer needs: the frame, the
// title and axis labels, axis ticks in pixel space, and one mark per
// datum with its pixel coordinates. Building a model is a pure
// function of its input; models hold no drawing state.
package chart

import (
	"strconv"

	"github.com/aclements/likesplot/group"
	"github.com/aclements/likesplot/scale"
)

// Kind identifies a chart type. Kinds double as the names of the
// containers the charts are placed in.
type Kind string

const (
	KindBoxplot  Kind = "boxplot"
	KindBarplot  Kind = "barplot"
	KindLineplot Kind = "lineplot"
)

// Kinds lists every chart kind in page order.
var Kinds = []Kind{KindBoxplot, KindBarplot, KindLineplot}

// Margin is the space between the frame edge and the plot area.
type Margin struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Frame is the pixel size of a chart and its margins.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin Margin  `json:"margin"`
}

// DefaultFrame is the frame of the box plot and bar chart.
var DefaultFrame = Frame{600, 400, Margin{Top: 30, Bottom: 50, Left: 60, Right: 30}}

// LineFrame is the frame of the time series chart, which leaves
// extra room below the axis for rotated date labels.
var LineFrame = Frame{600, 400, Margin{Top: 40, Bottom: 90, Left: 60, Right: 30}}

// XRange returns the horizontal pixel extent of the plot area.
func (f Frame) XRange() (lo, hi float64) {
	return f.Margin.Left, f.Width - f.Margin.Right
}

// YRange returns the vertical pixel extent of the plot area, bottom
// first, since values grow upward.
func (f Frame) YRange() (bottom, top float64) {
	return f.Height - f.Margin.Bottom, f.Margin.Top
}

// Tick is an axis tick at pixel position Pos.
type Tick struct {
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// Axis describes one axis of a chart.
type Axis struct {
	Label string `json:"label"`
	Ticks []Tick `json:"ticks"`

	// LabelAngle rotates tick labels, in degrees.
	LabelAngle float64 `json:"labelAngle,omitempty"`
}

// Meta is the part of a chart model shared by every kind.
type Meta struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
	Frame Frame  `json:"frame"`
	XAxis Axis   `json:"xAxis"`
	YAxis Axis   `json:"yAxis"`
}

// Chart is implemented by *Boxplot, *GroupedBar and *TimeSeries.
type Chart interface {
	Info() *Meta
}

// Info returns m.
func (m *Meta) Info() *Meta {
	return m
}

// Options are the settings shared by every chart builder.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Frame  Frame

	// Order is the order of categories along the x axis.
	Order group.Order

	// YTicks is the maximum number of y axis ticks.
	YTicks int
}

func (o *Options) defaults(title, xlabel string, frame Frame) {
	if o.Title == "" {
		o.Title = title
	}
	if o.XLabel == "" {
		o.XLabel = xlabel
	}
	if o.YLabel == "" {
		o.YLabel = "Number of Likes"
	}
	if o.Frame == (Frame{}) {
		o.Frame = frame
	}
	if o.YTicks <= 0 {
		o.YTicks = 10
	}
}

func (o *Options) meta(kind Kind) Meta {
	return Meta{
		Kind:  kind,
		Title: o.Title,
		Frame: o.Frame,
		XAxis: Axis{Label: o.XLabel},
		YAxis: Axis{Label: o.YLabel},
	}
}

func bandTicks(b *scale.Band) []Tick {
	bands := b.Bands()
	ticks := make([]Tick, len(bands))
	for i, band := range bands {
		ticks[i] = Tick{band.Center(), band.Category}
	}
	return ticks
}

func linearTicks(s *scale.Linear, max int) []Tick {
	vals := s.Ticks(max)
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{s.Map(v), strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

// valueScale returns the y scale of a chart over [lo, hi].
func valueScale(lo, hi float64, f Frame) (*scale.Linear, error) {
	bottom, top := f.YRange()
	return scale.NewLinear(lo, hi, bottom, top)
}
