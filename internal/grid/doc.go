// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package grid compresses a rectilinear polygon onto the irregular grid
// formed by its own vertex coordinates.
//
// Only the distinct x and y values that occur among the vertices become grid
// lines, so every structure built on top of the grid is bounded by the vertex
// count rather than by coordinate magnitude. A grid line index is a position
// in an [Axis]; a grid cell (or row band) lies between two consecutive lines.
//
// The y axis grows downward, matching the screen convention of the raster
// package: the "top" of the polygon is its smallest y.
package grid
