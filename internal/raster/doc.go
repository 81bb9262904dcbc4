// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster classifies the cells of a compressed rectilinear polygon
// with scanlines.
//
// It is the integer, axis-aligned counterpart of a classic active edge table:
// [BuildCrossingIndex] collects the vertical edges crossing every row band,
// and [BuildHeightGrid] walks them with the even-odd rule to produce a dense
// grid of interior heights.
package raster
