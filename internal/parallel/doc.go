// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package parallel runs batches of independent tasks on a fixed set of
// goroutines.
//
// The sweep hands it one task per anchor row. Rows differ wildly in cost, so
// idle workers steal queued tasks from busy ones.
//
// Thread safety: WorkerPool is safe for concurrent use.
package parallel
