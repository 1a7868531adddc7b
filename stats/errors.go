// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strconv"
)

// EmptyGroupError is returned when a statistic is requested of a
// sample with no observations.
type EmptyGroupError struct {
	// Group names the empty group, if known.
	Group string
}

func (e *EmptyGroupError) Error() string {
	if e.Group == "" {
		return "empty sample"
	}
	return fmt.Sprintf("group %q has no observations", e.Group)
}

// InvalidValueError is returned for a value that cannot take part in
// a computation: a NaN or infinite observation, text that does not
// parse as a number, or a parameter outside its allowed range.
type InvalidValueError struct {
	// Name is the parameter or column the value came from. It may
	// be empty for anonymous sample values.
	Name string

	// Index is the position of the value in its sample, or -1 if
	// not applicable.
	Index int

	// Value is the offending numeric value. It is meaningless if
	// Unparsed is set.
	Value float64

	// Raw is the original text of the value, if it came from text.
	// Unparsed is set if Raw could not be parsed as a number.
	Raw      string
	Unparsed bool
}

func (e *InvalidValueError) Error() string {
	var what string
	if e.Unparsed {
		what = strconv.Quote(e.Raw)
	} else {
		what = strconv.FormatFloat(e.Value, 'g', -1, 64)
	}
	switch {
	case e.Name != "" && e.Index >= 0:
		return fmt.Sprintf("invalid value %s for %s at index %d", what, e.Name, e.Index)
	case e.Name != "":
		return fmt.Sprintf("invalid value %s for %s", what, e.Name)
	case e.Index >= 0:
		return fmt.Sprintf("invalid value %s at index %d", what, e.Index)
	}
	return "invalid value " + what
}
