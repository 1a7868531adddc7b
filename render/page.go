// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/aclements/likesplot/chart"
)

// Section is one chart container of a page. Exactly one of Chart and
// Err is set: a chart whose pipeline failed is replaced by a notice
// naming its dataset and the error.
type Section struct {
	Kind    chart.Kind
	Dataset string
	Chart   chart.Chart
	Err     error
}

// Page is an HTML page holding the charts in order.
type Page struct {
	Title    string
	Sections []Section
}

type pageSection struct {
	ID      string
	Dataset string
	SVG     template.HTML
	Err     string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
.chart { margin: 1em 0; }
.failed { color: #a00; border: 1px dashed #a00; padding: 1em; width: 568px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}<div id="{{.ID}}" class="chart">
{{if .Err}}<p class="failed">Could not draw chart from {{.Dataset}}: {{.Err}}</p>
{{else}}{{.SVG}}
{{end}}</div>
{{end}}</body>
</html>
`))

// WritePage writes p as a standalone HTML document with the charts
// inlined as SVG.
func WritePage(w io.Writer, p Page) error {
	data := struct {
		Title    string
		Sections []pageSection
	}{Title: p.Title}
	for _, s := range p.Sections {
		ps := pageSection{ID: string(s.Kind), Dataset: s.Dataset}
		if s.Err == nil && s.Chart != nil {
			var buf bytes.Buffer
			if err := WriteSVG(&buf, s.Chart); err != nil {
				ps.Err = err.Error()
			} else {
				ps.SVG = template.HTML(stripXMLHeader(buf.Bytes()))
			}
		} else if s.Err != nil {
			ps.Err = s.Err.Error()
		} else {
			ps.Err = "no chart"
		}
		data.Sections = append(data.Sections, ps)
	}
	return pageTmpl.Execute(w, data)
}

// stripXMLHeader removes the XML declaration and doctype that svgo
// writes, which are not allowed inside an HTML document.
func stripXMLHeader(b []byte) []byte {
	i := bytes.Index(b, []byte("<svg"))
	if i < 0 {
		return b
	}
	return b[i:]
}
