// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// DuplicateCategoryError is returned when a categorical domain lists
// the same category more than once.
type DuplicateCategoryError struct {
	Category string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("duplicate category %q", e.Category)
}

// InvertedDomainError is returned when a linear domain runs from a
// larger to a smaller value and inversion was not requested.
type InvertedDomainError struct {
	D0, D1 float64
}

func (e *InvertedDomainError) Error() string {
	return fmt.Sprintf("inverted domain [%g, %g]", e.D0, e.D1)
}

// DegenerateDomainError is returned when a linear domain has zero
// width.
type DegenerateDomainError struct {
	D float64
}

func (e *DegenerateDomainError) Error() string {
	return fmt.Sprintf("degenerate domain [%g, %g]", e.D, e.D)
}
