// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/gogpu/rectfit/internal/grid"
)

// HeightGrid is a dense bands x cells grid over the compressed polygon.
//
// A cell holds 0 when it lies outside the polygon and the real height of its
// row band when it lies inside, so rectangle areas need no second lookup.
type HeightGrid struct {
	bands int
	cols  int
	cells []uint64
}

// BuildHeightGrid classifies every cell by crossing parity.
//
// Each band is scanned left to right; the inside flag flips at every toggling
// crossing and the span before it is filled with 0 or the band height. The
// parity state is cross-checked against the winding given by the crossing
// directions, which catches self-intersecting loops.
func BuildHeightGrid(p *grid.Polygon, ci *CrossingIndex) (*HeightGrid, error) {
	g := &HeightGrid{
		bands: ci.Bands(),
		cols:  max(p.Cols()-1, 0),
	}
	g.cells = make([]uint64, g.bands*g.cols)
	if g.cols == 0 {
		// A flat polygon has no cells to classify.
		return g, nil
	}

	for r := range g.bands {
		h := p.Y.Span(r, r+1)
		row := g.Row(r)

		inside := false
		winding := 0
		last := 0
		for _, c := range ci.Row(r) {
			if inside {
				fillSpan(row, last, c.X, h)
			}
			last = c.X
			if !c.Toggles(r) {
				continue
			}
			inside = !inside
			winding += c.Dir
			if winding < 0 || winding > 1 || inside != (winding == 1) {
				return nil, fmt.Errorf("%w: band %d: edge at vertex %d disagrees with the loop orientation",
					grid.ErrMalformedInput, r, p.Source[c.Vertex])
			}
		}
		if inside {
			return nil, fmt.Errorf("%w: band %d is not closed", grid.ErrMalformedInput, r)
		}
	}
	return g, nil
}

// fillSpan sets row[x1:x2] to h.
func fillSpan(row []uint64, x1, x2 int, h uint64) {
	for x := x1; x < x2; x++ {
		row[x] = h
	}
}

// Bands returns the number of row bands.
func (g *HeightGrid) Bands() int {
	return g.bands
}

// Cols returns the number of cells per band.
func (g *HeightGrid) Cols() int {
	return g.cols
}

// Row returns the cells of a band. The slice aliases the grid.
func (g *HeightGrid) Row(band int) []uint64 {
	return g.cells[band*g.cols : (band+1)*g.cols]
}

// At returns the cell value, 0 when outside.
func (g *HeightGrid) At(band, col int) uint64 {
	return g.cells[band*g.cols+col]
}

// Inside reports whether a cell is interior. Out-of-range cells are exterior.
func (g *HeightGrid) Inside(band, col int) bool {
	if band < 0 || band >= g.bands || col < 0 || col >= g.cols {
		return false
	}
	return g.At(band, col) > 0
}
