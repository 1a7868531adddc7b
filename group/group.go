// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package group partitions observations by a categorical key and
// aggregates each partition.
//
// Groups are ordered by the first appearance of their key in the
// input unless the caller asks for Sorted order. This ordering is
// part of the contract: chart domains built from groups list
// categories in the order the data first mentions them.
package group

import (
	"fmt"
	"sort"

	"github.com/aclements/likesplot/stats"
)

// Order selects the iteration order of groups.
type Order int

const (
	// FirstSeen orders groups by the first appearance of their
	// key in the input.
	FirstSeen Order = iota

	// Sorted orders groups by key in lexical order.
	Sorted
)

func (o Order) String() string {
	switch o {
	case FirstSeen:
		return "first-seen"
	case Sorted:
		return "sorted"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Observation is a single measurement tagged with a category.
type Observation struct {
	Category string
	Value    float64
}

// Groups is a partition of a sequence of values by key. Every input
// value belongs to exactly one group, and groups preserve the input
// order of their members.
type Groups[T any] struct {
	keys    []string
	members map[string][]T
}

// By partitions xs by key.
func By[T any](xs []T, key func(T) string, order Order) *Groups[T] {
	g := &Groups[T]{members: make(map[string][]T)}
	for _, x := range xs {
		k := key(x)
		if _, ok := g.members[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.members[k] = append(g.members[k], x)
	}
	if order == Sorted {
		sort.Strings(g.keys)
	}
	return g
}

// Keys returns the group keys in group order. The caller must not
// modify the returned slice.
func (g *Groups[T]) Keys() []string {
	return g.keys
}

// Get returns the members of group key in input order.
func (g *Groups[T]) Get(key string) []T {
	return g.members[key]
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int {
	return len(g.keys)
}

// Size returns the total number of values across all groups. It is
// always the length of the input to By.
func (g *Groups[T]) Size() int {
	n := 0
	for _, m := range g.members {
		n += len(m)
	}
	return n
}

// Categories returns the distinct categories of obs in the given
// order.
func Categories(obs []Observation, order Order) []string {
	return byCategory(obs, order).Keys()
}

func byCategory(obs []Observation, order Order) *Groups[Observation] {
	return By(obs, func(o Observation) string { return o.Category }, order)
}

func values(obs []Observation) []float64 {
	xs := make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = o.Value
	}
	return xs
}

// GroupError wraps an aggregation error with the group it occurred
// in.
type GroupError struct {
	Group string
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %q: %v", e.Group, e.Err)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}

// Summary is the five-number summary of one category.
type Summary struct {
	Category string           `json:"category"`
	N        int              `json:"n"`
	Stats    stats.FiveNumber `json:"stats"`
}

// Summaries computes the five-number summary of each category of
// obs.
func Summaries(obs []Observation, order Order) ([]Summary, error) {
	g := byCategory(obs, order)
	out := make([]Summary, 0, g.Len())
	for _, k := range g.Keys() {
		members := g.Get(k)
		s, err := stats.Summarize(values(members))
		if err != nil {
			return nil, &GroupError{k, err}
		}
		out = append(out, Summary{k, len(members), s})
	}
	return out, nil
}

// Mean is the arithmetic mean of one category.
type Mean struct {
	Category string  `json:"category"`
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
}

// Means computes the mean value of each category of obs.
func Means(obs []Observation, order Order) ([]Mean, error) {
	g := byCategory(obs, order)
	out := make([]Mean, 0, g.Len())
	for _, k := range g.Keys() {
		members := g.Get(k)
		m, err := stats.Mean(values(members))
		if err != nil {
			return nil, &GroupError{k, err}
		}
		out = append(out, Mean{k, len(members), m})
	}
	return out, nil
}
