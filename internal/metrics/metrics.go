// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package metrics records solve statistics as Prometheus metrics and writes
// them in the text exposition format, for node_exporter's textfile collector
// or any other scraper that reads files.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/rectfit"
)

// Registry holds every rectfit metric. It is separate from the default
// registry so that written files carry no Go runtime metrics.
var Registry = prometheus.NewRegistry()

var (
	// solvesTotal counts Observe calls by outcome, "ok" or "error".
	solvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rectfit_solves_total",
		Help: "Total number of solves by outcome",
	}, []string{"outcome"})
	solveDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rectfit_solve_duration_ms",
		Help:    "Solve duration in milliseconds",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})
	verticesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rectfit_vertices_total",
		Help: "Total number of input vertices",
	})
	rowsSweptTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rectfit_rows_swept_total",
		Help: "Total anchor rows swept",
	})
	rowsPrunedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rectfit_rows_pruned_total",
		Help: "Total anchor rows skipped by the area bound",
	})

	// lastArea is a float64 gauge, so areas above 2^53 are rounded.
	// lastWidth and lastHeight are at most 2^32 and always exact; their
	// product is the exact area.
	lastArea = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rectfit_last_area",
		Help: "Area of the most recent successful solve, rounded above 2^53",
	})
	lastWidth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rectfit_last_width",
		Help: "Inclusive width of the most recent rectangle",
	})
	lastHeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rectfit_last_height",
		Help: "Inclusive height of the most recent rectangle",
	})
)

func init() {
	Registry.MustRegister(solvesTotal)
	Registry.MustRegister(solveDurationMs)
	Registry.MustRegister(verticesTotal)
	Registry.MustRegister(rowsSweptTotal)
	Registry.MustRegister(rowsPrunedTotal)
	Registry.MustRegister(lastArea)
	Registry.MustRegister(lastWidth)
	Registry.MustRegister(lastHeight)
}

// Observe records one solve of n vertices that took d.
func Observe(n int, res rectfit.Result, err error, d time.Duration) {
	verticesTotal.Add(float64(n))
	solveDurationMs.Observe(float64(d.Microseconds()) / 1000)
	if err != nil {
		solvesTotal.WithLabelValues("error").Inc()
		return
	}
	solvesTotal.WithLabelValues("ok").Inc()
	rowsSweptTotal.Add(float64(res.Stats.Rows))
	rowsPrunedTotal.Add(float64(res.Stats.Pruned))
	lastArea.Set(float64(res.Area))
	var w, h uint64
	if res.Area > 0 {
		w, h = res.Rect.Width(), res.Rect.Height()
	}
	lastWidth.Set(float64(w))
	lastHeight.Set(float64(h))
}

// WriteFile writes the registry to path atomically.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
