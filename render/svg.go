// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws chart models as SVG, PNG and HTML.
//
// Renderers only draw: every position comes from the chart model.
// The one computation they add is the natural cubic curve through
// the points of a time series.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/likesplot/chart"
)

// Background is the fill of every chart's backdrop.
const Background = "#ffffe0" // lightyellow

func px(x float64) int {
	return int(math.Round(x))
}

// WriteSVG writes c to w as a standalone SVG document.
func WriteSVG(w io.Writer, c chart.Chart) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	m := c.Info()
	f := m.Frame
	s.Start(px(f.Width), px(f.Height))
	s.Title(m.Title)
	s.Rect(0, 0, px(f.Width), px(f.Height), "fill:"+Background)
	s.Text(px(f.Width/2), px(f.Margin.Top/2), m.Title, "text-anchor:middle;font-size:16px;font-family:sans-serif")

	switch c := c.(type) {
	case *chart.Boxplot:
		svgAxes(s, m)
		svgBoxes(s, c)
	case *chart.GroupedBar:
		svgBars(s, c)
		svgAxes(s, m)
		svgLegend(s, c)
	case *chart.TimeSeries:
		svgAxes(s, m)
		svgLine(s, c)
	default:
		return fmt.Errorf("unknown chart type %T", c)
	}
	s.End()
	return ew.err
}

func svgAxes(s *svg.SVG, m *chart.Meta) {
	f := m.Frame
	x0, x1 := f.XRange()
	y0, y1 := f.YRange()
	const axisStyle = "stroke:black;stroke-width:1"
	const tickFont = "font-size:10px;font-family:sans-serif"

	// x axis.
	s.Line(px(x0), px(y0), px(x1), px(y0), axisStyle)
	for _, t := range m.XAxis.Ticks {
		x := px(t.Pos)
		s.Line(x, px(y0), x, px(y0)+6, axisStyle)
		if m.XAxis.LabelAngle != 0 {
			s.TranslateRotate(x, px(y0)+9, m.XAxis.LabelAngle)
			s.Text(0, 9, t.Label, "text-anchor:end;"+tickFont)
			s.Gend()
		} else {
			s.Text(x, px(y0)+18, t.Label, "text-anchor:middle;"+tickFont)
		}
	}

	// y axis.
	s.Line(px(x0), px(y0), px(x0), px(y1), axisStyle)
	for _, t := range m.YAxis.Ticks {
		y := px(t.Pos)
		s.Line(px(x0)-6, y, px(x0), y, axisStyle)
		s.Text(px(x0)-9, y+3, t.Label, "text-anchor:end;"+tickFont)
	}

	// Axis labels.
	labelStyle := "text-anchor:middle;font-size:12px;font-family:sans-serif"
	xLabelY := y0 + 40
	if m.XAxis.LabelAngle != 0 {
		xLabelY = f.Height - 15
	}
	s.Text(px(f.Width/2), px(xLabelY), m.XAxis.Label, labelStyle)
	s.TranslateRotate(20, px(f.Height/2), -90)
	s.Text(0, 0, m.YAxis.Label, labelStyle)
	s.Gend()
}

func svgBoxes(s *svg.SVG, c *chart.Boxplot) {
	for _, b := range c.Boxes {
		s.Group(fmt.Sprintf(`class="box" data-category=%q`, b.Category))
		s.Line(px(b.Center), px(b.YMin), px(b.Center), px(b.YMax), "stroke:black")
		s.Rect(px(b.X), px(b.YQ3), px(b.Width), px(b.YQ1-b.YQ3), "fill:"+Background+";stroke:black")
		s.Line(px(b.X), px(b.YMedian), px(b.X+b.Width), px(b.YMedian), "stroke:black")
		s.Gend()
	}
}

func svgBars(s *svg.SVG, c *chart.GroupedBar) {
	for _, b := range c.Bars {
		s.Rect(px(b.X), px(b.Y), px(b.Width), px(b.Height), "fill:"+b.Color)
	}
}

func svgLegend(s *svg.SVG, c *chart.GroupedBar) {
	for _, e := range c.Legend {
		s.Rect(px(e.X), px(e.Y), px(e.Size), px(e.Size), "fill:"+e.Color)
		s.Text(px(e.TextX), px(e.TextY), e.Label, "font-size:12px;font-family:sans-serif")
	}
}

func svgLine(s *svg.SVG, c *chart.TimeSeries) {
	if len(c.Points) == 0 {
		return
	}
	s.Path(PathData(points(c)), "stroke:red;fill:none;stroke-width:1.5")
}

func points(c *chart.TimeSeries) []XY {
	pts := make([]XY, len(c.Points))
	for i, p := range c.Points {
		pts[i] = XY{p.X, p.Y}
	}
	return pts
}

// PathData returns SVG path data for the natural curve through pts.
func PathData(pts []XY) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(pts[0].X), num(pts[0].Y))
	for _, seg := range NaturalCurve(pts) {
		fmt.Fprintf(&b, "C%s,%s,%s,%s,%s,%s",
			num(seg.C1.X), num(seg.C1.Y), num(seg.C2.X), num(seg.C2.Y), num(seg.To.X), num(seg.To.Y))
	}
	return b.String()
}

func num(x float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", x), "0"), ".")
}

// errWriter records the first write error so the svgo calls, which
// do not report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
