// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

// Orientation is the traversal direction of a vertex loop, as seen on screen
// (y growing downward).
type Orientation int

const (
	// Clockwise loops leave the top-left corner moving right.
	Clockwise Orientation = iota
	// CounterClockwise loops leave the top-left corner moving down.
	CounterClockwise
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite orientation.
func (o Orientation) Reverse() Orientation {
	if o == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// DetectOrientation derives the loop direction from its top-left vertex.
//
// The vertex with the smallest y (then smallest x) is always a convex corner
// of a simple rectilinear polygon, so the direction of the edge leaving it
// decides the orientation of the whole loop.
func DetectOrientation(points []Point) Orientation {
	if len(points) < 2 {
		return Clockwise
	}
	top := 0
	for i, p := range points {
		q := points[top]
		if p.Y < q.Y || (p.Y == q.Y && p.X < q.X) {
			top = i
		}
	}
	next := points[(top+1)%len(points)]
	if next.X == points[top].X {
		return CounterClockwise
	}
	return Clockwise
}
