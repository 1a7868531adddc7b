// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// Category10 is the ten-color categorical palette used by d3.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Ordinal assigns each category of a domain a fixed palette entry.
// The i'th category gets palette[i % len(palette)].
type Ordinal struct {
	domain  []string
	palette []string
	index   map[string]int
}

// NewOrdinal returns an ordinal scale from domain to palette.
func NewOrdinal(domain, palette []string) (*Ordinal, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	o := &Ordinal{
		domain:  append([]string(nil), domain...),
		palette: append([]string(nil), palette...),
		index:   make(map[string]int, len(domain)),
	}
	for i, c := range o.domain {
		if _, ok := o.index[c]; ok {
			return nil, &DuplicateCategoryError{Category: c}
		}
		o.index[c] = i
	}
	return o, nil
}

// Domain returns the categories of o in order.
func (o *Ordinal) Domain() []string {
	return o.domain
}

// Color returns the palette entry for category c. It returns false
// if c is not in the domain.
func (o *Ordinal) Color(c string) (string, bool) {
	i, ok := o.index[c]
	if !ok {
		return "", false
	}
	return o.palette[i%len(o.palette)], true
}
