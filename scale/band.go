// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to pixel positions.
//
// Band and Nested lay categories out along an axis. Linear maps a
// numeric domain onto a pixel range. Ordinal assigns colors to
// categories. All scales are immutable once constructed and safe
// for concurrent use.
package scale

import (
	"math"

	"github.com/aclements/likesplot/stats"
)

// CategoryBand is the pixel interval [Start, Start+Width] assigned
// to a category.
type CategoryBand struct {
	Category string  `json:"category"`
	Start    float64 `json:"start"`
	Width    float64 `json:"width"`
}

// End returns the end of the band.
func (b CategoryBand) End() float64 {
	return b.Start + b.Width
}

// Center returns the midpoint of the band.
func (b CategoryBand) Center() float64 {
	return b.Start + b.Width/2
}

// Band divides the pixel interval [lo, hi] into one equal step per
// category, in domain order. Each step holds a band of width
// step*(1-padding) centered in the step, so half of each step's
// padding falls on either side of the band.
type Band struct {
	domain  []string
	index   map[string]int
	lo, hi  float64
	padding float64
	step    float64
}

// NewBand returns a band scale over domain covering [lo, hi].
//
// domain must not contain duplicate categories and padding must be
// in [0, 1). An empty domain is allowed and yields a zero bandwidth.
func NewBand(domain []string, lo, hi, padding float64) (*Band, error) {
	if math.IsNaN(padding) || padding < 0 || padding >= 1 {
		return nil, &stats.InvalidValueError{Name: "padding", Index: -1, Value: padding}
	}
	for _, v := range []float64{lo, hi} {
		if err := stats.CheckFinite([]float64{v}); err != nil {
			return nil, &stats.InvalidValueError{Name: "range", Index: -1, Value: v}
		}
	}

	b := &Band{
		domain:  append([]string(nil), domain...),
		index:   make(map[string]int, len(domain)),
		lo:      lo,
		hi:      hi,
		padding: padding,
	}
	for i, c := range b.domain {
		if _, ok := b.index[c]; ok {
			return nil, &DuplicateCategoryError{Category: c}
		}
		b.index[c] = i
	}
	if n := len(b.domain); n > 0 {
		b.step = (hi - lo) / float64(n)
	}
	return b, nil
}

// Domain returns the categories of b in order. The caller must not
// modify the returned slice.
func (b *Band) Domain() []string {
	return b.domain
}

// Range returns the pixel interval of b.
func (b *Band) Range() (lo, hi float64) {
	return b.lo, b.hi
}

// Padding returns the padding fraction of b.
func (b *Band) Padding() float64 {
	return b.padding
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 {
	return b.step
}

// Bandwidth returns the width of every band.
func (b *Band) Bandwidth() float64 {
	return b.step * (1 - b.padding)
}

// Lookup returns the band of category c. It returns false if c is
// not in the domain of b.
func (b *Band) Lookup(c string) (CategoryBand, bool) {
	i, ok := b.index[c]
	if !ok {
		return CategoryBand{}, false
	}
	return b.band(i), true
}

// Start returns the start of the band of category c, or NaN if c is
// not in the domain of b.
func (b *Band) Start(c string) float64 {
	band, ok := b.Lookup(c)
	if !ok {
		return math.NaN()
	}
	return band.Start
}

// Bands returns the band of every category in domain order.
func (b *Band) Bands() []CategoryBand {
	out := make([]CategoryBand, len(b.domain))
	for i := range b.domain {
		out[i] = b.band(i)
	}
	return out
}

func (b *Band) band(i int) CategoryBand {
	return CategoryBand{
		Category: b.domain[i],
		Start:    b.lo + float64(i)*b.step + b.step*b.padding/2,
		Width:    b.Bandwidth(),
	}
}

// Nested lays out a second categorical dimension inside each band of
// an outer band scale. The inner layout is the same under every
// outer category.
type Nested struct {
	outer *Band
	inner *Band
}

// NewNested returns a nested scale that divides each band of outer
// among the inner categories.
func NewNested(outer *Band, inner []string, padding float64) (*Nested, error) {
	in, err := NewBand(inner, 0, outer.Bandwidth(), padding)
	if err != nil {
		return nil, err
	}
	return &Nested{outer, in}, nil
}

// Outer returns the outer band scale.
func (n *Nested) Outer() *Band {
	return n.outer
}

// Inner returns the inner band scale, whose range is relative to the
// start of an outer band.
func (n *Nested) Inner() *Band {
	return n.inner
}

// Lookup returns the absolute band of inner category in under outer
// category out.
func (n *Nested) Lookup(out, in string) (CategoryBand, bool) {
	ob, ok := n.outer.Lookup(out)
	if !ok {
		return CategoryBand{}, false
	}
	ib, ok := n.inner.Lookup(in)
	if !ok {
		return CategoryBand{}, false
	}
	ib.Start += ob.Start
	return ib, true
}
