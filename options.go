// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rectfit

import "log/slog"

// Option configures a single [Solve] call.
//
// Example:
//
//	res, err := rectfit.Solve(vertices,
//	    rectfit.WithWorkers(0), // one worker per CPU
//	    rectfit.WithLogger(logger),
//	)
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		workers: 1,   // serial sweep
		logger:  nil, // package logger
	}
}

// WithWorkers spreads the sweep over n workers.
// 1 (the default) sweeps serially; 0 or a negative value uses GOMAXPROCS.
// The result does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
