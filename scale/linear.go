// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"

	"github.com/aclements/likesplot/stats"
)

// Linear maps the numeric domain [D0, D1] affinely onto the pixel
// range [R0, R1].
//
// R0 > R1 is allowed and is the usual case for a vertical axis, where
// larger values are drawn higher up. D0 > D1 is only allowed if the
// scale was built with AllowInverted.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// LinearOption configures NewLinear.
type LinearOption func(*linearConfig)

type linearConfig struct {
	inverted bool
}

// AllowInverted permits a domain with D0 > D1, which flips the axis.
func AllowInverted() LinearOption {
	return func(c *linearConfig) { c.inverted = true }
}

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
//
// It fails with a *DegenerateDomainError if d0 == d1 and with an
// *InvertedDomainError if d0 > d1 without AllowInverted.
func NewLinear(d0, d1, r0, r1 float64, opts ...LinearOption) (*Linear, error) {
	var cfg linearConfig
	for _, o := range opts {
		o(&cfg)
	}
	for i, v := range []float64{d0, d1, r0, r1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			name := "domain"
			if i >= 2 {
				name = "range"
			}
			return nil, &stats.InvalidValueError{Name: name, Index: -1, Value: v}
		}
	}
	if d0 == d1 {
		return nil, &DegenerateDomainError{d0}
	}
	if d0 > d1 && !cfg.inverted {
		return nil, &InvertedDomainError{d0, d1}
	}
	return &Linear{d0, d1, r0, r1}, nil
}

// Map returns the pixel position of v. Values outside the domain
// extrapolate linearly.
func (s *Linear) Map(v float64) float64 {
	t := frac(v, s.D0, s.D1)
	// This form maps D0 and D1 to exactly R0 and R1.
	return s.R0*(1-t) + s.R1*t
}

// Invert returns the domain value at pixel position px.
func (s *Linear) Invert(px float64) float64 {
	if s.R0 == s.R1 {
		return s.D0
	}
	t := frac(px, s.R0, s.R1)
	return s.D0*(1-t) + s.D1*t
}

// frac returns (x-a)/(b-a). Finite a and b may be further apart than
// the largest float64, so an overflowing difference is computed on
// halved operands instead.
func frac(x, a, b float64) float64 {
	num, den := x-a, b-a
	if math.IsInf(num, 0) || math.IsInf(den, 0) {
		num, den = x/2-a/2, b/2-a/2
	}
	return num / den
}

func (s *Linear) bounds() mscale.Linear {
	if s.D0 > s.D1 {
		return mscale.Linear{Min: s.D1, Max: s.D0}
	}
	return mscale.Linear{Min: s.D0, Max: s.D1}
}

// Ticks returns at most max round tick values inside the domain, in
// increasing order.
func (s *Linear) Ticks(max int) []float64 {
	if max < 1 {
		return nil
	}
	l := s.bounds()
	major, _ := l.Ticks(mscale.TickOptions{Max: max})
	ticks := make([]float64, 0, len(major))
	for _, t := range major {
		if t >= l.Min && t <= l.Max {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// Nice returns a copy of s whose domain is widened outward to round
// tick values, so the axis starts and ends on a tick.
func (s *Linear) Nice(max int) *Linear {
	if max < 1 {
		max = 10
	}
	l := s.bounds()
	l.Nice(mscale.TickOptions{Max: max})
	n := *s
	if s.D0 > s.D1 {
		n.D0, n.D1 = l.Max, l.Min
	} else {
		n.D0, n.D1 = l.Min, l.Max
	}
	return &n
}
