// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command rectfit prints the largest area of a rectangle spanned by two
// vertices of a rectilinear polygon that fits inside the polygon.
//
// Vertices are read one "x,y" pair per line from -input or standard input.
//
//	rectfit -input polygon.txt
//	rectfit -input polygon.txt -estimate -pretty -png out.png
//
// Defaults may be set in the environment or in a .env file in the working
// directory: RECTFIT_WORKERS, LOG_LEVEL (debug, info, warn, error) and
// LOG_FORMAT (text, json).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rectfit"
	"github.com/gogpu/rectfit/internal/metrics"
	"github.com/gogpu/rectfit/internal/vertexio"
	"github.com/gogpu/rectfit/render"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "rectfit: .env:", err)
	}
	if err := run(os.Args[1:], os.Stdin, os.Stdout, setupLogger(os.Stderr)); err != nil {
		fmt.Fprintln(os.Stderr, "rectfit:", err)
		os.Exit(1)
	}
}

type config struct {
	input    string
	workers  int
	estimate bool
	png      string
	pretty   bool
	metrics  string
}

func parseFlags(args []string) (config, error) {
	workers := 1
	if s := os.Getenv("RECTFIT_WORKERS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return config{}, fmt.Errorf("RECTFIT_WORKERS: %w", err)
		}
		workers = n
	}

	var cfg config
	fset := flag.NewFlagSet("rectfit", flag.ContinueOnError)
	fset.StringVar(&cfg.input, "input", "", "vertex file, one x,y pair per line (default stdin)")
	fset.IntVar(&cfg.workers, "workers", workers, "sweep workers; 0 uses every CPU")
	fset.BoolVar(&cfg.estimate, "estimate", false, "also print the column-extrema estimate")
	fset.StringVar(&cfg.png, "png", "", "write a PNG of the polygon and rectangle")
	fset.BoolVar(&cfg.pretty, "pretty", false, "print a readable summary instead of the bare area")
	fset.StringVar(&cfg.metrics, "metrics", "", "write Prometheus metrics to this file")
	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	if fset.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	log = log.With("run", uuid.NewString())

	vertices, err := readVertices(cfg.input, stdin)
	if err != nil {
		return err
	}
	log.Info("vertices loaded", "count", len(vertices), "source", sourceName(cfg.input))

	start := time.Now()
	res, err := rectfit.Solve(vertices, rectfit.WithWorkers(cfg.workers), rectfit.WithLogger(log))
	elapsed := time.Since(start)
	metrics.Observe(len(vertices), res, err, elapsed)
	if cfg.metrics != "" {
		defer func() {
			if err := metrics.WriteFile(cfg.metrics); err != nil {
				log.Error("metrics not written", "path", cfg.metrics, "err", err)
			}
		}()
	}
	if err != nil {
		return err
	}
	log.Info("solved",
		"area", res.Area,
		"rows", res.Stats.Rows,
		"pruned", res.Stats.Pruned,
		"duration_ms", elapsed.Milliseconds())

	var estimate uint64
	if cfg.estimate {
		if estimate, err = rectfit.EstimateArea(vertices); err != nil {
			return err
		}
	}

	if cfg.pretty {
		printSummary(stdout, res, cfg.estimate, estimate)
	} else {
		fmt.Fprintln(stdout, res.Area)
		if cfg.estimate {
			fmt.Fprintln(stdout, estimate)
		}
	}

	if cfg.png != "" {
		if err := writeImage(cfg.png, vertices, res); err != nil {
			return err
		}
		log.Info("image written", "path", cfg.png)
	}
	return nil
}

func readVertices(path string, stdin io.Reader) ([]rectfit.Vertex, error) {
	if path == "" {
		return vertexio.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vs, err := vertexio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vs, nil
}

func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func printSummary(w io.Writer, res rectfit.Result, withEstimate bool, estimate uint64) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "area:        %d\n", res.Area)
	if res.Area > 0 {
		p.Fprintf(w, "rectangle:   %v-%v (%d x %d)\n",
			res.Rect.Min, res.Rect.Max, res.Rect.Width(), res.Rect.Height())
	}
	p.Fprintf(w, "orientation: %v\n", res.Orientation)
	if withEstimate {
		p.Fprintf(w, "estimate:    %d\n", estimate)
	}
}

func writeImage(path string, vertices []rectfit.Vertex, res rectfit.Result) error {
	opts := render.DefaultOptions()
	opts.NoRect = res.Area == 0
	img, err := render.Draw(vertices, res.Rect, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
