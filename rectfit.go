// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rectfit

import (
	"fmt"

	"github.com/gogpu/rectfit/internal/grid"
	"github.com/gogpu/rectfit/internal/parallel"
	"github.com/gogpu/rectfit/internal/raster"
	"github.com/gogpu/rectfit/internal/sweep"
)

// Vertex is a polygon corner. Its identity is its position in the loop.
type Vertex struct {
	X, Y uint64
}

// String returns "(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Orientation is the traversal direction of a vertex loop (y down).
type Orientation = grid.Orientation

const (
	// Clockwise loops leave their top-left corner moving right.
	Clockwise = grid.Clockwise
	// CounterClockwise loops leave their top-left corner moving down.
	CounterClockwise = grid.CounterClockwise
)

// Rectangle is an axis-aligned rectangle with inclusive corners.
type Rectangle struct {
	Min, Max Vertex
}

// RectangleOf returns the rectangle with a and b as opposite corners.
func RectangleOf(a, b Vertex) Rectangle {
	return Rectangle{
		Min: Vertex{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Vertex{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Width returns the inclusive width, Max.X-Min.X+1.
func (r Rectangle) Width() uint64 {
	return r.Max.X - r.Min.X + 1
}

// Height returns the inclusive height, Max.Y-Min.Y+1.
func (r Rectangle) Height() uint64 {
	return r.Max.Y - r.Min.Y + 1
}

// Area returns Width*Height.
func (r Rectangle) Area() uint64 {
	return r.Width() * r.Height()
}

// Contains reports whether v lies inside r or on its border.
func (r Rectangle) Contains(v Vertex) bool {
	return v.X >= r.Min.X && v.X <= r.Max.X && v.Y >= r.Min.Y && v.Y <= r.Max.Y
}

// Bounds returns the bounding box of the vertices.
// It returns the zero Rectangle for an empty slice.
func Bounds(vertices []Vertex) Rectangle {
	if len(vertices) == 0 {
		return Rectangle{}
	}
	r := Rectangle{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}

// Result is the outcome of [Solve].
type Result struct {
	// Area is the largest inclusive area, 0 when the polygon encloses none.
	Area uint64

	// Rect is the winning rectangle. Meaningful only when Area > 0.
	Rect Rectangle

	// Corners are the two polygon vertices at opposite corners of Rect.
	// Corners[0] lies on the upper edge.
	Corners [2]Vertex

	// Orientation is the traversal direction of the input loop.
	Orientation Orientation

	// Stats describes the work done by the sweep.
	Stats Stats
}

// Stats counts sweep work.
type Stats struct {
	// Rows is the number of compressed grid lines swept as anchor rows.
	Rows int

	// Pruned is the number of anchor rows skipped because even the widest
	// rectangle reaching the bottom could not beat the best area found.
	Pruned int

	// Levels is the total number of bands descended over all anchor rows.
	Levels int
}

// MaxInscribedRectangleArea returns the largest area of a rectangle that has
// two polygon vertices as opposite corners and lies entirely inside the
// polygon, boundary included.
//
// It is Solve without options, reduced to the area.
func MaxInscribedRectangleArea(vertices []Vertex) (uint64, error) {
	res, err := Solve(vertices)
	if err != nil {
		return 0, err
	}
	return res.Area, nil
}

// Solve computes the largest inscribed vertex-anchored rectangle.
//
// The vertex loop is implicitly closed. It must describe a simple rectilinear
// polygon without holes; otherwise the error wraps [ErrMalformedInput].
// A loop whose vertices all coincide is a single unit tile with area 1;
// a loop with no extent along one axis encloses nothing and yields 0.
func Solve(vertices []Vertex, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	p, err := grid.Compress(toGrid(vertices))
	if err != nil {
		return Result{}, err
	}
	g, err := raster.BuildHeightGrid(p, raster.BuildCrossingIndex(p))
	if err != nil {
		return Result{}, err
	}
	log.Debug("rectfit: grid built",
		"vertices", len(vertices),
		"rows", p.Rows(),
		"cols", p.Cols(),
		"orientation", p.Orientation.String())

	var pool *parallel.WorkerPool
	if o.workers != 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}
	best := sweep.Run(p, g, sweep.Options{Pool: pool, Logger: log})

	res := Result{
		Area:        best.Area,
		Orientation: p.Orientation,
		Stats: Stats{
			Rows:   best.Stats.Rows,
			Pruned: best.Stats.Pruned,
			Levels: best.Stats.Levels,
		},
	}
	if best.Area > 0 {
		a := fromGrid(p.Vertex(best.A))
		b := fromGrid(p.Vertex(best.B))
		res.Corners = [2]Vertex{a, b}
		res.Rect = RectangleOf(a, b)
	}
	return res, nil
}

func toGrid(vertices []Vertex) []grid.Vertex {
	out := make([]grid.Vertex, len(vertices))
	for i, v := range vertices {
		out[i] = grid.Vertex{X: v.X, Y: v.Y}
	}
	return out
}

func fromGrid(v grid.Vertex) Vertex {
	return Vertex{X: v.X, Y: v.Y}
}
