// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"slices"
)

// Vertex is a polygon corner in original coordinates
// (internal copy to avoid an import cycle with the root package).
type Vertex struct {
	X, Y uint64
}

// Point is a vertex in compressed index space: X and Y are grid line indices.
type Point struct {
	X, Y int
}

// Polygon is a vertex loop rewritten onto its own compressed grid.
type Polygon struct {
	// X and Y are the compressed axes.
	X, Y Axis

	// Points is the loop in compressed space. Consecutive duplicates of the
	// input (zero-length edges) are collapsed; adjacency is otherwise kept.
	Points []Point

	// Source maps each entry of Points back to its input vertex index.
	Source []int

	// Orientation is the loop direction, derived once from the geometry.
	Orientation Orientation
}

// Compress validates a vertex loop and rewrites it onto the grid formed by
// its distinct coordinates.
//
// The loop is implicitly closed: the last vertex connects back to the first.
// Every edge, including that closing edge, must be horizontal or vertical.
func Compress(vertices []Vertex) (*Polygon, error) {
	n := len(vertices)
	if n < 4 {
		return nil, fmt.Errorf("%w: need at least 4 vertices, got %d", ErrMalformedInput, n)
	}

	xs := make([]uint64, n)
	ys := make([]uint64, n)
	for i, v := range vertices {
		if v.X > MaxCoordinate || v.Y > MaxCoordinate {
			return nil, fmt.Errorf("%w: vertex %d (%d,%d) exceeds %d",
				ErrMalformedInput, i, v.X, v.Y, MaxCoordinate)
		}
		next := vertices[(i+1)%n]
		if v.X != next.X && v.Y != next.Y {
			if i == n-1 {
				return nil, fmt.Errorf("%w: closing edge %d->0 is not axis-aligned",
					ErrMalformedInput, i)
			}
			return nil, fmt.Errorf("%w: edge %d->%d is not axis-aligned",
				ErrMalformedInput, i, i+1)
		}
		xs[i] = v.X
		ys[i] = v.Y
	}

	p := &Polygon{
		X:      NewAxis(xs),
		Y:      NewAxis(ys),
		Points: make([]Point, 0, n),
		Source: make([]int, 0, n),
	}
	for i, v := range vertices {
		x, _ := p.X.Index(v.X)
		y, _ := p.Y.Index(v.Y)
		pt := Point{X: x, Y: y}
		if k := len(p.Points); k > 0 && p.Points[k-1] == pt {
			continue
		}
		p.Points = append(p.Points, pt)
		p.Source = append(p.Source, i)
	}
	if k := len(p.Points); k > 1 && p.Points[k-1] == p.Points[0] {
		p.Points = p.Points[:k-1]
		p.Source = p.Source[:k-1]
	}

	p.Orientation = DetectOrientation(p.Points)
	return p, nil
}

// Len returns the number of compressed vertices.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Next returns the index following i in loop order.
func (p *Polygon) Next(i int) int {
	return (i + 1) % len(p.Points)
}

// Prev returns the index preceding i in loop order.
func (p *Polygon) Prev(i int) int {
	return (i + len(p.Points) - 1) % len(p.Points)
}

// ClockwisePrev returns the vertex that precedes i when the loop is walked
// clockwise, whatever the input order was.
func (p *Polygon) ClockwisePrev(i int) int {
	if p.Orientation == Clockwise {
		return p.Prev(i)
	}
	return p.Next(i)
}

// Rows returns the number of horizontal grid lines.
func (p *Polygon) Rows() int {
	return p.Y.Len()
}

// Cols returns the number of vertical grid lines.
func (p *Polygon) Cols() int {
	return p.X.Len()
}

// Flat reports whether the polygon has no extent along some axis.
// A flat polygon encloses no area.
func (p *Polygon) Flat() bool {
	return p.X.Len() < 2 || p.Y.Len() < 2
}

// VertexRows lists, for every horizontal grid line, the distinct compressed
// x indices of the vertices lying on it, in increasing order.
func (p *Polygon) VertexRows() [][]int {
	rows := make([][]int, p.Y.Len())
	for _, pt := range p.Points {
		rows[pt.Y] = append(rows[pt.Y], pt.X)
	}
	for y := range rows {
		slices.Sort(rows[y])
		rows[y] = slices.Compact(rows[y])
	}
	return rows
}

// Vertex returns the original coordinates of a compressed point.
func (p *Polygon) Vertex(pt Point) Vertex {
	return Vertex{X: p.X.Value(pt.X), Y: p.Y.Value(pt.Y)}
}
