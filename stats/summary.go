// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes the summary statistics drawn by the
// likesplot charts: five-number summaries for box plots and
// arithmetic means for averaged bar and line charts.
//
// Quantiles use linear interpolation between order statistics (the
// R-7 method of Hyndman and Fan, which is also what d3.quantile and
// NumPy's default use).
package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// FiveNumber is the five-number summary of a sample.
//
// For any non-empty sample, Min <= Q1 <= Median <= Q3 <= Max.
type FiveNumber struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// IQR returns the interquartile range Q3 - Q1.
func (f FiveNumber) IQR() float64 {
	return f.Q3 - f.Q1
}

// Valid reports whether f satisfies the ordering invariant of a
// five-number summary.
func (f FiveNumber) Valid() bool {
	return f.Min <= f.Q1 && f.Q1 <= f.Median && f.Median <= f.Q3 && f.Q3 <= f.Max
}

// Summarize returns the five-number summary of xs. xs is not
// modified.
//
// If xs is empty, Summarize returns an *EmptyGroupError. If xs
// contains a NaN or infinity, it returns an *InvalidValueError.
func Summarize(xs []float64) (FiveNumber, error) {
	if len(xs) == 0 {
		return FiveNumber{}, &EmptyGroupError{}
	}
	if err := CheckFinite(xs); err != nil {
		return FiveNumber{}, err
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := stats.Sample{Xs: sorted, Sorted: true}
	min, max := s.Bounds()
	return FiveNumber{
		Min:    min,
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    max,
	}, nil
}

// Quantile returns the p-quantile of sorted, which must be in
// ascending order. p is clamped to [0, 1].
//
// The quantile is interpolated linearly at rank p*(n-1) between the
// two bracketing order statistics. If sorted is empty or p is NaN,
// Quantile returns NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 || n == 1 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	r := p * float64(n-1)
	lo := int(math.Floor(r))
	hi := int(math.Ceil(r))
	v0, v1 := sorted[lo], sorted[hi]
	return v0 + (r-float64(lo))*(v1-v0)
}

// Mean returns the arithmetic mean of xs.
//
// Like Summarize, it fails on empty input and on non-finite values.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, &EmptyGroupError{}
	}
	if err := CheckFinite(xs); err != nil {
		return 0, err
	}
	return stats.Mean(xs), nil
}

// CheckFinite returns an *InvalidValueError for the first NaN or
// infinite value in xs, or nil if every value is finite.
func CheckFinite(xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &InvalidValueError{Index: i, Value: x}
		}
	}
	return nil
}
