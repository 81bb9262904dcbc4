// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rectfit

import "github.com/gogpu/rectfit/internal/grid"

// EstimateArea returns the largest rectangle spanned by the topmost or
// bottommost vertex of one column and the opposite extreme of another column.
//
// It ignores concavity: the rectangle is never checked against the polygon,
// and pairs of vertices sharing a column or a row are skipped. It is cheap
// and usually larger than [MaxInscribedRectangleArea], but it is not a
// guaranteed upper bound.
//
// Input is validated exactly as in [Solve].
func EstimateArea(vertices []Vertex) (uint64, error) {
	p, err := grid.Compress(toGrid(vertices))
	if err != nil {
		return 0, err
	}

	cols := p.Cols()
	lo := make([]int, cols)
	hi := make([]int, cols)
	for c := range lo {
		lo[c] = p.Rows()
		hi[c] = -1
	}
	for _, pt := range p.Points {
		lo[pt.X] = min(lo[pt.X], pt.Y)
		hi[pt.X] = max(hi[pt.X], pt.Y)
	}

	bound := p.Y.Span(0, p.Rows()-1)
	var best uint64
	for a := range cols {
		for b := cols - 1; b > a; b-- {
			w := p.X.Span(a, b)
			// Columns only get closer from here.
			if w*bound <= best {
				break
			}
			if lo[b] < hi[a] {
				best = max(best, w*p.Y.Span(lo[b], hi[a]))
			}
			if lo[a] < hi[b] {
				best = max(best, w*p.Y.Span(lo[a], hi[b]))
			}
		}
	}
	return best, nil
}
