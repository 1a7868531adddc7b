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

// Point is a data point of a time series with its pixel position.
type Point struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// TimeSeries is a line chart of one value per date.
type TimeSeries struct {
	Meta
	X      *scale.Band   `json:"-"`
	Y      *scale.Linear `json:"-"`
	Points []Point       `json:"points"`
}

// TimeSeriesOptions configures NewTimeSeries.
type TimeSeriesOptions struct {
	Options

	// LabelAngle rotates the date labels on the x axis.
	LabelAngle float64
}

// NewTimeSeries builds a line chart of obs, which must have one
// observation per date. Dates are laid out in input order; Options
// Order is ignored. Points sit at the center of each date's band.
func NewTimeSeries(obs []group.Observation, opts TimeSeriesOptions) (*TimeSeries, error) {
	opts.defaults("Average Likes Over Time", "Date", LineFrame)
	if opts.LabelAngle == 0 {
		opts.LabelAngle = -25
	}
	if len(obs) == 0 {
		return nil, &stats.EmptyGroupError{}
	}

	dates := make([]string, len(obs))
	vals := make([]float64, len(obs))
	for i, o := range obs {
		dates[i], vals[i] = o.Category, o.Value
	}
	if err := stats.CheckFinite(vals); err != nil {
		return nil, err
	}
	max := vals[0]
	for _, v := range vals {
		if v > max {
			max = v
		}
	}

	x0, x1 := opts.Frame.XRange()
	x, err := scale.NewBand(dates, x0, x1, 0)
	if err != nil {
		return nil, err
	}
	y, err := valueScale(0, max, opts.Frame)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	p := &TimeSeries{Meta: opts.meta(KindLineplot), X: x, Y: y}
	p.XAxis.Ticks = bandTicks(x)
	p.XAxis.LabelAngle = opts.LabelAngle
	p.YAxis.Ticks = linearTicks(y, opts.YTicks)
	for _, o := range obs {
		band, _ := x.Lookup(o.Category)
		p.Points = append(p.Points, Point{o.Category, o.Value, band.Center(), y.Map(o.Value)})
	}
	return p, nil
}
