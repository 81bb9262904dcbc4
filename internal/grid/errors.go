// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrMalformedInput is returned when a vertex loop cannot describe a simple
// rectilinear polygon: too few vertices, an edge that is not axis-aligned,
// a coordinate beyond [MaxCoordinate], or an inconsistent boundary.
var ErrMalformedInput = errors.New("rectfit: malformed input")

// MaxCoordinate is the largest accepted coordinate value.
// Inclusive extents are at most 2^32-1, so any area fits in a uint64.
const MaxCoordinate uint64 = 1<<32 - 2
