// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"cmp"
	"slices"

	"github.com/gogpu/rectfit/internal/grid"
)

// Crossing is a vertical boundary edge as seen by a row band scanline.
type Crossing struct {
	// X is the compressed column of the edge.
	X int

	// Lo and Hi are the compressed y lines of the edge endpoints, Lo < Hi.
	Lo, Hi int

	// Dir is +1 when scanning left to right across the edge enters the
	// interior and -1 when it leaves. It follows from the loop orientation.
	Dir int

	// Vertex is the index of the polygon point that owns the edge.
	Vertex int
}

// Toggles reports whether the edge flips the inside/outside state of band.
//
// Scanlines are half-open: an edge toggles the bands from its upper endpoint
// down to, but excluding, its lower endpoint. An edge that only touches a
// band at its lower endpoint leaves parity unchanged.
func (c Crossing) Toggles(band int) bool {
	return c.Lo <= band && band < c.Hi
}

// CrossingIndex lists, for every row band, the vertical edges whose y range
// brackets the band, sorted by column.
type CrossingIndex struct {
	rows [][]Crossing
}

// BuildCrossingIndex registers each vertical edge in every band it spans.
//
// Every vertex owns the edge to its clockwise predecessor, so each edge is
// registered exactly once regardless of the input direction.
func BuildCrossingIndex(p *grid.Polygon) *CrossingIndex {
	bands := max(p.Rows()-1, 0)
	ci := &CrossingIndex{rows: make([][]Crossing, bands)}

	for i, cur := range p.Points {
		prev := p.Points[p.ClockwisePrev(i)]
		if prev.Y == cur.Y {
			continue
		}
		c := Crossing{
			X:      cur.X,
			Lo:     min(prev.Y, cur.Y),
			Hi:     max(prev.Y, cur.Y),
			Dir:    1,
			Vertex: i,
		}
		// Walking clockwise with y pointing down, the interior lies to the
		// right of travel: a downward edge has it on its left.
		if cur.Y > prev.Y {
			c.Dir = -1
		}
		for r := c.Lo; r <= c.Hi && r < bands; r++ {
			ci.rows[r] = append(ci.rows[r], c)
		}
	}

	for _, row := range ci.rows {
		slices.SortFunc(row, func(a, b Crossing) int {
			return cmp.Or(
				cmp.Compare(a.X, b.X),
				cmp.Compare(a.Lo, b.Lo),
				cmp.Compare(a.Hi, b.Hi),
				cmp.Compare(b.Dir, a.Dir),
			)
		})
	}
	return ci
}

// Bands returns the number of row bands.
func (ci *CrossingIndex) Bands() int {
	return len(ci.rows)
}

// Row returns the crossings of a band, sorted by column.
// The returned slice must not be modified.
func (ci *CrossingIndex) Row(band int) []Crossing {
	return ci.rows[band]
}
