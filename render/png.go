// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/aclements/likesplot/chart"
)

// PNGOptions configures WritePNG.
type PNGOptions struct {
	// Supersample renders shapes at this multiple of the chart
	// size and scales the result down, which smooths edges beyond
	// what the rasterizer's own anti-aliasing does. Values below 1
	// mean 1.
	Supersample int
}

// WritePNG rasterizes c and writes it to w as a PNG image.
//
// Shapes are drawn with gogpu/gg. Text uses a fixed 7x13 bitmap face,
// so tick labels are never rotated: rotated labels are drawn
// horizontally instead, staggered on two rows.
func WritePNG(w io.Writer, c chart.Chart, o PNGOptions) error {
	img, err := Rasterize(c, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws c into a new RGBA image the size of its frame.
func Rasterize(c chart.Chart, o PNGOptions) (*image.RGBA, error) {
	k := o.Supersample
	if k < 1 {
		k = 1
	}
	m := c.Info()
	width, height := px(m.Frame.Width), px(m.Frame.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty frame %vx%v", m.Frame.Width, m.Frame.Height)
	}

	dc := gg.NewContext(width*k, height*k)
	defer dc.Close()
	dc.ClearWithColor(gg.Hex(Background))
	dc.Scale(float64(k), float64(k))
	p := &painter{dc: dc}

	switch c := c.(type) {
	case *chart.Boxplot:
		p.axes(m)
		p.boxes(c)
	case *chart.GroupedBar:
		p.bars(c)
		p.axes(m)
	case *chart.TimeSeries:
		p.axes(m)
		p.line(c)
	default:
		return nil, fmt.Errorf("unknown chart type %T", c)
	}
	if p.err != nil {
		return nil, p.err
	}

	// Scale down to the frame size, then draw text at 1x so the
	// bitmap face stays crisp.
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	src := dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if k == 1 {
		draw.Copy(dst, image.Point{}, src, src.Bounds(), draw.Src, nil)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	labels(dst, c)
	return dst, nil
}

type painter struct {
	dc  *gg.Context
	err error
}

func (p *painter) check(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

func (p *painter) stroke(hex string, width float64) {
	p.dc.SetHexColor(hex)
	p.dc.SetLineWidth(width)
	p.check(p.dc.Stroke())
}

func (p *painter) line(c *chart.TimeSeries) {
	pts := points(c)
	if len(pts) == 0 {
		return
	}
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, s := range NaturalCurve(pts) {
		p.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	p.stroke("#ff0000", 1.5)
}

func (p *painter) axes(m *chart.Meta) {
	x0, x1 := m.Frame.XRange()
	y0, y1 := m.Frame.YRange()
	p.dc.DrawLine(x0, y0, x1, y0)
	p.dc.DrawLine(x0, y0, x0, y1)
	for _, t := range m.XAxis.Ticks {
		p.dc.DrawLine(t.Pos, y0, t.Pos, y0+6)
	}
	for _, t := range m.YAxis.Ticks {
		p.dc.DrawLine(x0-6, t.Pos, x0, t.Pos)
	}
	p.stroke("#000000", 1)
}

func (p *painter) boxes(c *chart.Boxplot) {
	for _, b := range c.Boxes {
		p.dc.DrawLine(b.Center, b.YMin, b.Center, b.YMax)
		p.stroke("#000000", 1)

		p.dc.DrawRectangle(b.X, b.YQ3, b.Width, b.YQ1-b.YQ3)
		p.dc.SetHexColor(Background)
		p.check(p.dc.FillPreserve())
		p.stroke("#000000", 1)

		p.dc.DrawLine(b.X, b.YMedian, b.X+b.Width, b.YMedian)
		p.stroke("#000000", 1)
	}
}

func (p *painter) bars(c *chart.GroupedBar) {
	for _, b := range c.Bars {
		p.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		p.dc.SetHexColor(b.Color)
		p.check(p.dc.Fill())
	}
	for _, e := range c.Legend {
		p.dc.DrawRectangle(e.X, e.Y, e.Size, e.Size)
		p.dc.SetHexColor(e.Color)
		p.check(p.dc.Fill())
	}
}

// labels draws the text of c onto img.
func labels(img *image.RGBA, c chart.Chart) {
	m := c.Info()
	f := m.Frame
	x0, _ := f.XRange()
	y0, _ := f.YRange()

	text(img, m.Title, f.Width/2, f.Margin.Top/2+4, anchorMiddle)
	for i, t := range m.XAxis.Ticks {
		y := y0 + 18
		if m.XAxis.LabelAngle != 0 && i%2 == 1 {
			y += 14
		}
		text(img, t.Label, t.Pos, y, anchorMiddle)
	}
	for _, t := range m.YAxis.Ticks {
		text(img, t.Label, x0-9, t.Pos+4, anchorEnd)
	}
	xLabelY := y0 + 40
	if m.XAxis.LabelAngle != 0 {
		xLabelY = f.Height - 15
	}
	text(img, m.XAxis.Label, f.Width/2, xLabelY, anchorMiddle)
	vtext(img, m.YAxis.Label, 8, f.Height/2)

	if bar, ok := c.(*chart.GroupedBar); ok {
		for _, e := range bar.Legend {
			text(img, e.Label, e.TextX, e.TextY, anchorStart)
		}
	}
}

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

func text(img *image.RGBA, s string, x, y float64, a anchor) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s)
	dot := fixed.Point26_6{X: fixed.I(px(x)), Y: fixed.I(px(y))}
	switch a {
	case anchorMiddle:
		dot.X -= w / 2
	case anchorEnd:
		dot.X -= w
	}
	d.Dot = dot
	d.DrawString(s)
}

// vtext draws s as a vertical column of characters centered on
// (x, y), in place of text rotated by 90 degrees.
func vtext(img *image.RGBA, s string, x, y float64) {
	const lineHeight = 13
	rs := []rune(s)
	top := y - float64(len(rs)*lineHeight)/2 + lineHeight
	for i, r := range rs {
		text(img, string(r), x, top+float64(i*lineHeight), anchorMiddle)
	}
}
