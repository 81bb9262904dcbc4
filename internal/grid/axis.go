// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"slices"
	"sort"
)

// Axis is a strictly increasing sequence of distinct coordinate values.
// The index of a value is its grid line.
type Axis struct {
	values []uint64
}

// NewAxis builds an axis from arbitrary values. The input is not modified.
func NewAxis(values []uint64) Axis {
	v := slices.Clone(values)
	slices.Sort(v)
	return Axis{values: slices.Compact(v)}
}

// Len returns the number of grid lines.
func (a Axis) Len() int {
	return len(a.values)
}

// Value returns the coordinate of grid line i.
func (a Axis) Value(i int) uint64 {
	return a.values[i]
}

// Index returns the grid line holding value v.
// The boolean is false when v is not on the axis.
func (a Axis) Index(v uint64) (int, bool) {
	i := sort.Search(len(a.values), func(i int) bool {
		return a.values[i] >= v
	})
	if i == len(a.values) || a.values[i] != v {
		return i, false
	}
	return i, true
}

// Span returns the inclusive real extent between grid lines i and j,
// in either order: |value(j) - value(i)| + 1.
func (a Axis) Span(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return a.values[j] - a.values[i] + 1
}

// Values returns a copy of the axis values.
func (a Axis) Values() []uint64 {
	return slices.Clone(a.values)
}
