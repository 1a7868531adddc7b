// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// XY is a point in pixel space.
type XY struct {
	X, Y float64
}

// Segment is a cubic Bézier segment from From to To with control
// points C1 and C2. A straight segment has C1 == From and C2 == To.
type Segment struct {
	From, C1, C2, To XY
}

// NaturalCurve returns the natural cubic spline through pts as a
// sequence of Bézier segments, one per consecutive pair of points.
// The spline has zero second derivative at both ends, matching d3's
// curveNatural. With fewer than three points the segments are
// straight lines.
func NaturalCurve(pts []XY) []Segment {
	n := len(pts) - 1
	if n < 1 {
		return nil
	}
	segs := make([]Segment, n)
	if n == 1 {
		segs[0] = Segment{pts[0], pts[0], pts[1], pts[1]}
		return segs
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	ax, bx := controlPoints(xs)
	ay, by := controlPoints(ys)
	for i := 0; i < n; i++ {
		segs[i] = Segment{
			From: pts[i],
			C1:   XY{ax[i], ay[i]},
			C2:   XY{bx[i], by[i]},
			To:   pts[i+1],
		}
	}
	return segs
}

// controlPoints solves the tridiagonal system for the Bézier control
// points of a natural cubic spline through x along one axis. x must
// have at least three elements.
func controlPoints(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	// Forward elimination.
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	// Back substitution. a now holds the first control points.
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	// Second control points.
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
