// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rectfit

import "github.com/gogpu/rectfit/internal/grid"

// ErrMalformedInput is returned when the vertices cannot describe a simple
// rectilinear polygon: fewer than 4 vertices, an edge (including the closing
// edge from the last vertex back to the first) that is not axis-aligned, a
// coordinate above [MaxCoordinate], or a boundary whose crossings are
// inconsistent. Check for it with errors.Is.
var ErrMalformedInput = grid.ErrMalformedInput

// MaxCoordinate is the largest accepted coordinate value.
const MaxCoordinate = grid.MaxCoordinate
