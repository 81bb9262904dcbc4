// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rectfit finds the largest rectangle that fits inside a rectilinear
// polygon with two of the polygon's own vertices as opposite corners.
//
// # Overview
//
// The polygon is given as its boundary: an ordered loop of integer vertices
// joined by horizontal and vertical edges. Areas follow the inclusive
// convention, counting integer points: the rectangle from (x1, y1) to
// (x2, y2) has area (x2-x1+1)*(y2-y1+1).
//
// Coordinates may be huge; the work depends only on the number of vertices.
//
// # Quick Start
//
//	import "github.com/gogpu/rectfit"
//
//	area, err := rectfit.MaxInscribedRectangleArea([]rectfit.Vertex{
//	    {7, 1}, {11, 1}, {11, 7}, {9, 7}, {9, 5}, {2, 5}, {2, 3}, {7, 3},
//	})
//	// area == 24
//
// [Solve] also returns the winning rectangle and accepts options such as
// [WithWorkers]. [EstimateArea] is a cheaper bound that ignores concavity.
//
// # Architecture
//
// The library is organized into:
//   - internal/grid: coordinate compression and loop orientation
//   - internal/raster: per-band crossing lists and the interior height grid
//   - internal/sweep: the histogram sweep over anchor rows
//   - internal/parallel: the worker pool used by [WithWorkers]
//   - render: PNG visualization of a polygon and its rectangle
//
// # Coordinates
//
// y grows downward, as on screen. Orientation names follow that convention.
package rectfit
